package store

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"drogueria/m/domain"
)

const productColumns = `id, nombre, descripcion, precio_compra, precio_venta, stock, categoria_id, proveedor_id`

type ProductRepository struct {
	q sqlx.ExtContext
}

// Create inserts p and sets its ID. Category and supplier references must
// point at existing rows.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	id, err := insert(ctx, r.q,
		`INSERT INTO producto (nombre, descripcion, precio_compra, precio_venta, stock, categoria_id, proveedor_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.PurchasePrice, p.SalePrice, p.Stock, p.CategoryID, p.SupplierID)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// Update overwrites every column of the product identified by p.ID.
func (r *ProductRepository) Update(ctx context.Context, p domain.Product) error {
	return execOne(ctx, r.q,
		`UPDATE producto SET nombre = ?, descripcion = ?, precio_compra = ?, precio_venta = ?,
		stock = ?, categoria_id = ?, proveedor_id = ? WHERE id = ?`,
		p.Name, p.Description, p.PurchasePrice, p.SalePrice, p.Stock, p.CategoryID, p.SupplierID, p.ID)
}

func (r *ProductRepository) Get(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	err := sqlx.GetContext(ctx, r.q, &p, `SELECT `+productColumns+` FROM producto WHERE id = ?`, id)
	return p, translate(err)
}

// GetDetail loads the product and resolves its category and supplier.
// A reference that no longer resolves is left nil.
func (r *ProductRepository) GetDetail(ctx context.Context, id int64) (domain.ProductDetail, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return domain.ProductDetail{}, err
	}
	detail := domain.ProductDetail{Product: p}
	if p.CategoryID != nil {
		c, err := (&CategoryRepository{q: r.q}).Get(ctx, *p.CategoryID)
		switch {
		case err == nil:
			detail.Category = &c
		case !errors.Is(err, domain.ErrNotFound):
			return domain.ProductDetail{}, err
		}
	}
	if p.SupplierID != nil {
		s, err := (&SupplierRepository{q: r.q}).Get(ctx, *p.SupplierID)
		switch {
		case err == nil:
			detail.Supplier = &s
		case !errors.Is(err, domain.ErrNotFound):
			return domain.ProductDetail{}, err
		}
	}
	return detail, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := sqlx.SelectContext(ctx, r.q, &out, `SELECT `+productColumns+` FROM producto ORDER BY id`)
	return out, translate(err)
}

func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	var out []domain.Product
	err := sqlx.SelectContext(ctx, r.q, &out,
		`SELECT `+productColumns+` FROM producto WHERE categoria_id = ? ORDER BY id`, categoryID)
	return out, translate(err)
}

func (r *ProductRepository) ListBySupplier(ctx context.Context, supplierID int64) ([]domain.Product, error) {
	var out []domain.Product
	err := sqlx.SelectContext(ctx, r.q, &out,
		`SELECT `+productColumns+` FROM producto WHERE proveedor_id = ? ORDER BY id`, supplierID)
	return out, translate(err)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "producto", id)
}
