package domain

type Supplier struct {
	ID      int64   `db:"id" json:"id"`
	Name    string  `db:"nombre" json:"nombre"`
	Contact *string `db:"contacto" json:"contacto,omitempty"`
	Phone   *string `db:"telefono" json:"telefono,omitempty"`
	Email   *string `db:"email" json:"email,omitempty"`
}

type SupplierWithProducts struct {
	Supplier
	Products []Product `json:"productos"`
}
