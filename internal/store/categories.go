package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"drogueria/m/domain"
)

type CategoryRepository struct {
	q sqlx.ExtContext
}

// Create inserts c and sets its ID.
func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	id, err := insert(ctx, r.q, `INSERT INTO categoria (nombre) VALUES (?)`, c.Name)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *CategoryRepository) Get(ctx context.Context, id int64) (domain.Category, error) {
	var c domain.Category
	err := sqlx.GetContext(ctx, r.q, &c, `SELECT id, nombre FROM categoria WHERE id = ?`, id)
	return c, translate(err)
}

// FindByName returns the first category named name.
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (domain.Category, error) {
	var c domain.Category
	err := sqlx.GetContext(ctx, r.q, &c, `SELECT id, nombre FROM categoria WHERE nombre = ? ORDER BY id LIMIT 1`, name)
	return c, translate(err)
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	err := sqlx.SelectContext(ctx, r.q, &out, `SELECT id, nombre FROM categoria ORDER BY id`)
	return out, translate(err)
}

// GetWithProducts loads the category and the products referencing it.
func (r *CategoryRepository) GetWithProducts(ctx context.Context, id int64) (domain.CategoryWithProducts, error) {
	c, err := r.Get(ctx, id)
	if err != nil {
		return domain.CategoryWithProducts{}, err
	}
	products, err := (&ProductRepository{q: r.q}).ListByCategory(ctx, id)
	if err != nil {
		return domain.CategoryWithProducts{}, err
	}
	return domain.CategoryWithProducts{Category: c, Products: products}, nil
}

// Delete fails with domain.ErrForeignKeyViolation while products reference
// the category.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "categoria", id)
}
