package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID            int64           `db:"id" json:"id"`
	Name          string          `db:"nombre" json:"nombre"`
	Description   *string         `db:"descripcion" json:"descripcion,omitempty"`
	PurchasePrice decimal.Decimal `db:"precio_compra" json:"precio_compra"`
	SalePrice     decimal.Decimal `db:"precio_venta" json:"precio_venta"`
	Stock         int64           `db:"stock" json:"stock"`
	CategoryID    *int64          `db:"categoria_id" json:"categoria_id,omitempty"`
	SupplierID    *int64          `db:"proveedor_id" json:"proveedor_id,omitempty"`
}

// ProductDetail is a product with its category and supplier resolved.
// Either may be nil when the product carries no reference.
type ProductDetail struct {
	Product
	Category *Category `json:"categoria,omitempty"`
	Supplier *Supplier `json:"proveedor,omitempty"`
}
