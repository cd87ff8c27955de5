package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"drogueria/m/domain"
)

type repositories struct {
	Categories   *CategoryRepository
	Suppliers    *SupplierRepository
	Products     *ProductRepository
	Entries      *MovementRepository
	Exits        *MovementRepository
	Users        *UserRepository
	Invoices     *InvoiceRepository
	InvoiceLines *InvoiceLineRepository
}

func newRepositories(q sqlx.ExtContext) repositories {
	return repositories{
		Categories:   &CategoryRepository{q: q},
		Suppliers:    &SupplierRepository{q: q},
		Products:     &ProductRepository{q: q},
		Entries:      &MovementRepository{q: q, table: "entrada"},
		Exits:        &MovementRepository{q: q, table: "salida"},
		Users:        &UserRepository{q: q},
		Invoices:     &InvoiceRepository{q: q},
		InvoiceLines: &InvoiceLineRepository{q: q},
	}
}

// Store is the storage handle shared by whatever component reads or writes
// drugstore data. Its repositories run outside any transaction; use WithTx
// to group writes into one unit of work.
type Store struct {
	db *sqlx.DB
	repositories
}

// New wraps an initialized database handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db, repositories: newRepositories(db)}
}

// DB returns the underlying handle.
func (s *Store) DB() *sqlx.DB { return s.db }

// Tx exposes the same repositories bound to a single transaction.
type Tx struct {
	tx *sqlx.Tx
	repositories
}

// WithTx runs fn inside a transaction. The transaction commits when fn returns
// nil and rolls back otherwise. Repositories of the Store must not be used
// from inside fn: the pool holds a single connection.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&Tx{tx: tx, repositories: newRepositories(tx)}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// translate maps driver errors onto domain errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && isForeignKeyError(sqliteErr) {
		return fmt.Errorf("%w: %v", domain.ErrForeignKeyViolation, err)
	}
	return err
}

func isForeignKeyError(e *sqlite.Error) bool {
	code := e.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	// Without extended result codes only the primary code is set.
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(e.Error(), "FOREIGN KEY")
}

func insert(ctx context.Context, q sqlx.ExecerContext, query string, args ...any) (int64, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translate(err)
	}
	return res.LastInsertId()
}

func execOne(ctx context.Context, q sqlx.ExecerContext, query string, args ...any) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, q sqlx.ExecerContext, table string, id int64) error {
	return execOne(ctx, q, `DELETE FROM `+table+` WHERE id = ?`, id)
}
