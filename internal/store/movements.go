package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"drogueria/m/domain"
)

// MovementRepository serves both entrada and salida. Recording a movement
// leaves producto.stock unchanged.
type MovementRepository struct {
	q     sqlx.ExtContext
	table string
}

func (r *MovementRepository) Create(ctx context.Context, m *domain.StockMovement) error {
	id, err := insert(ctx, r.q,
		`INSERT INTO `+r.table+` (producto_id, cantidad, fecha) VALUES (?, ?, ?)`,
		m.ProductID, m.Quantity, m.Date)
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

func (r *MovementRepository) Get(ctx context.Context, id int64) (domain.StockMovement, error) {
	var m domain.StockMovement
	err := sqlx.GetContext(ctx, r.q, &m,
		`SELECT id, producto_id, cantidad, fecha FROM `+r.table+` WHERE id = ?`, id)
	return m, translate(err)
}

func (r *MovementRepository) List(ctx context.Context) ([]domain.StockMovement, error) {
	var out []domain.StockMovement
	err := sqlx.SelectContext(ctx, r.q, &out,
		`SELECT id, producto_id, cantidad, fecha FROM `+r.table+` ORDER BY id`)
	return out, translate(err)
}

func (r *MovementRepository) ListByProduct(ctx context.Context, productID int64) ([]domain.StockMovement, error) {
	var out []domain.StockMovement
	err := sqlx.SelectContext(ctx, r.q, &out,
		`SELECT id, producto_id, cantidad, fecha FROM `+r.table+` WHERE producto_id = ? ORDER BY id`, productID)
	return out, translate(err)
}

func (r *MovementRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, r.table, id)
}
