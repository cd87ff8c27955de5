package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"drogueria/m/domain"
)

type InvoiceRepository struct {
	q sqlx.ExtContext
}

// Create inserts inv as given. The total is stored, not computed from lines.
func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	id, err := insert(ctx, r.q,
		`INSERT INTO factura (usuario_id, fecha, total) VALUES (?, ?, ?)`,
		inv.UserID, inv.Date, inv.Total)
	if err != nil {
		return err
	}
	inv.ID = id
	return nil
}

func (r *InvoiceRepository) Get(ctx context.Context, id int64) (domain.Invoice, error) {
	var inv domain.Invoice
	err := sqlx.GetContext(ctx, r.q, &inv, `SELECT id, usuario_id, fecha, total FROM factura WHERE id = ?`, id)
	return inv, translate(err)
}

// GetDetail assembles the invoice with its user and lines.
func (r *InvoiceRepository) GetDetail(ctx context.Context, id int64) (domain.InvoiceDetail, error) {
	inv, err := r.Get(ctx, id)
	if err != nil {
		return domain.InvoiceDetail{}, err
	}
	user, err := (&UserRepository{q: r.q}).Get(ctx, inv.UserID)
	if err != nil {
		return domain.InvoiceDetail{}, fmt.Errorf("invoice %d user: %w", id, err)
	}
	lines, err := (&InvoiceLineRepository{q: r.q}).ListByInvoice(ctx, id)
	if err != nil {
		return domain.InvoiceDetail{}, err
	}
	return domain.InvoiceDetail{Invoice: inv, User: user, Lines: lines}, nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	var out []domain.Invoice
	err := sqlx.SelectContext(ctx, r.q, &out, `SELECT id, usuario_id, fecha, total FROM factura ORDER BY id`)
	return out, translate(err)
}

func (r *InvoiceRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Invoice, error) {
	var out []domain.Invoice
	err := sqlx.SelectContext(ctx, r.q, &out,
		`SELECT id, usuario_id, fecha, total FROM factura WHERE usuario_id = ? ORDER BY id`, userID)
	return out, translate(err)
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "factura", id)
}

type InvoiceLineRepository struct {
	q sqlx.ExtContext
}

// Create inserts l. Price is the unit price at the time of sale and is not
// read from the product.
func (r *InvoiceLineRepository) Create(ctx context.Context, l *domain.InvoiceLine) error {
	id, err := insert(ctx, r.q,
		`INSERT INTO detallefactura (factura_id, producto_id, cantidad, precio) VALUES (?, ?, ?, ?)`,
		l.InvoiceID, l.ProductID, l.Quantity, l.Price)
	if err != nil {
		return err
	}
	l.ID = id
	return nil
}

func (r *InvoiceLineRepository) Get(ctx context.Context, id int64) (domain.InvoiceLine, error) {
	var l domain.InvoiceLine
	err := sqlx.GetContext(ctx, r.q, &l,
		`SELECT id, factura_id, producto_id, cantidad, precio FROM detallefactura WHERE id = ?`, id)
	return l, translate(err)
}

func (r *InvoiceLineRepository) ListByInvoice(ctx context.Context, invoiceID int64) ([]domain.InvoiceLine, error) {
	var out []domain.InvoiceLine
	err := sqlx.SelectContext(ctx, r.q, &out,
		`SELECT id, factura_id, producto_id, cantidad, precio FROM detallefactura WHERE factura_id = ? ORDER BY id`, invoiceID)
	return out, translate(err)
}

func (r *InvoiceLineRepository) ListByProduct(ctx context.Context, productID int64) ([]domain.InvoiceLine, error) {
	var out []domain.InvoiceLine
	err := sqlx.SelectContext(ctx, r.q, &out,
		`SELECT id, factura_id, producto_id, cantidad, precio FROM detallefactura WHERE producto_id = ? ORDER BY id`, productID)
	return out, translate(err)
}

func (r *InvoiceLineRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "detallefactura", id)
}
