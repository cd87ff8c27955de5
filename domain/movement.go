package domain

// StockMovement is a row of either entrada (incoming stock) or salida
// (outgoing stock). Both tables share the same shape. Recording a movement
// does not change Product.Stock.
type StockMovement struct {
	ID        int64  `db:"id" json:"id"`
	ProductID int64  `db:"producto_id" json:"producto_id"`
	Quantity  int64  `db:"cantidad" json:"cantidad"`
	Date      string `db:"fecha" json:"fecha"`
}
