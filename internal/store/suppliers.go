package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"drogueria/m/domain"
)

const supplierColumns = `id, nombre, contacto, telefono, email`

type SupplierRepository struct {
	q sqlx.ExtContext
}

func (r *SupplierRepository) Create(ctx context.Context, s *domain.Supplier) error {
	id, err := insert(ctx, r.q,
		`INSERT INTO proveedor (nombre, contacto, telefono, email) VALUES (?, ?, ?, ?)`,
		s.Name, s.Contact, s.Phone, s.Email)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *SupplierRepository) Get(ctx context.Context, id int64) (domain.Supplier, error) {
	var s domain.Supplier
	err := sqlx.GetContext(ctx, r.q, &s, `SELECT `+supplierColumns+` FROM proveedor WHERE id = ?`, id)
	return s, translate(err)
}

func (r *SupplierRepository) FindByName(ctx context.Context, name string) (domain.Supplier, error) {
	var s domain.Supplier
	err := sqlx.GetContext(ctx, r.q, &s,
		`SELECT `+supplierColumns+` FROM proveedor WHERE nombre = ? ORDER BY id LIMIT 1`, name)
	return s, translate(err)
}

func (r *SupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	var out []domain.Supplier
	err := sqlx.SelectContext(ctx, r.q, &out, `SELECT `+supplierColumns+` FROM proveedor ORDER BY id`)
	return out, translate(err)
}

func (r *SupplierRepository) GetWithProducts(ctx context.Context, id int64) (domain.SupplierWithProducts, error) {
	s, err := r.Get(ctx, id)
	if err != nil {
		return domain.SupplierWithProducts{}, err
	}
	products, err := (&ProductRepository{q: r.q}).ListBySupplier(ctx, id)
	if err != nil {
		return domain.SupplierWithProducts{}, err
	}
	return domain.SupplierWithProducts{Supplier: s, Products: products}, nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "proveedor", id)
}
