package domain

type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"nombre" json:"nombre"`
}

type CategoryWithProducts struct {
	Category
	Products []Product `json:"productos"`
}
