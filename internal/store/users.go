package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"drogueria/m/domain"
)

type UserRepository struct {
	q sqlx.ExtContext
}

// Create stores u with its password replaced by a bcrypt hash. u.Password
// holds the hash afterwards.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	id, err := insert(ctx, r.q,
		`INSERT INTO usuario (nombre, email, password, rol) VALUES (?, ?, ?, ?)`,
		u.Name, u.Email, string(hashed), u.Role)
	if err != nil {
		return err
	}
	u.ID = id
	u.Password = string(hashed)
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := sqlx.GetContext(ctx, r.q, &u, `SELECT id, nombre, email, password, rol FROM usuario WHERE id = ?`, id)
	return u, translate(err)
}

// FindByEmail matches email case-insensitively; stored addresses keep the
// case they were written with.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := sqlx.GetContext(ctx, r.q, &u,
		`SELECT id, nombre, email, password, rol FROM usuario WHERE lower(email) = lower(?) ORDER BY id LIMIT 1`,
		email)
	return u, translate(err)
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := sqlx.SelectContext(ctx, r.q, &out, `SELECT id, nombre, email, password, rol FROM usuario ORDER BY id`)
	return out, translate(err)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "usuario", id)
}
