package domain

import "github.com/shopspring/decimal"

type Invoice struct {
	ID     int64           `db:"id" json:"id"`
	UserID int64           `db:"usuario_id" json:"usuario_id"`
	Date   string          `db:"fecha" json:"fecha"`
	Total  decimal.Decimal `db:"total" json:"total"`
}

type InvoiceLine struct {
	ID        int64           `db:"id" json:"id"`
	InvoiceID int64           `db:"factura_id" json:"factura_id"`
	ProductID int64           `db:"producto_id" json:"producto_id"`
	Quantity  int64           `db:"cantidad" json:"cantidad"`
	Price     decimal.Decimal `db:"precio" json:"precio"`
}

// InvoiceDetail is an invoice assembled with its issuing user and its lines.
type InvoiceDetail struct {
	Invoice
	User  User          `json:"usuario"`
	Lines []InvoiceLine `json:"detalles"`
}
