package migrations

import (
	"context"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"
)

// Table describes one declared table: its column set in declaration order
// and the statement that creates it.
type Table struct {
	Name    string
	Columns []string
	DDL     string
}

// Column types match what the original ORM emitted for SQLite, so existing
// drogueria.db files open without changes.
var tables = []Table{
	{
		Name:    "categoria",
		Columns: []string{"id", "nombre"},
		DDL: `CREATE TABLE IF NOT EXISTS categoria (
			id INTEGER NOT NULL,
			nombre VARCHAR NOT NULL,
			PRIMARY KEY (id)
		);`,
	},
	{
		Name:    "proveedor",
		Columns: []string{"id", "nombre", "contacto", "telefono", "email"},
		DDL: `CREATE TABLE IF NOT EXISTS proveedor (
			id INTEGER NOT NULL,
			nombre VARCHAR NOT NULL,
			contacto VARCHAR,
			telefono VARCHAR,
			email VARCHAR,
			PRIMARY KEY (id)
		);`,
	},
	{
		Name: "producto",
		Columns: []string{"id", "nombre", "descripcion", "precio_compra", "precio_venta",
			"stock", "categoria_id", "proveedor_id"},
		DDL: `CREATE TABLE IF NOT EXISTS producto (
			id INTEGER NOT NULL,
			nombre VARCHAR NOT NULL,
			descripcion VARCHAR,
			precio_compra FLOAT NOT NULL,
			precio_venta FLOAT NOT NULL,
			stock INTEGER NOT NULL DEFAULT 0,
			categoria_id INTEGER,
			proveedor_id INTEGER,
			PRIMARY KEY (id),
			FOREIGN KEY(categoria_id) REFERENCES categoria (id),
			FOREIGN KEY(proveedor_id) REFERENCES proveedor (id)
		);`,
	},
	{
		Name:    "entrada",
		Columns: []string{"id", "producto_id", "cantidad", "fecha"},
		DDL: `CREATE TABLE IF NOT EXISTS entrada (
			id INTEGER NOT NULL,
			producto_id INTEGER NOT NULL,
			cantidad INTEGER NOT NULL,
			fecha VARCHAR NOT NULL,
			PRIMARY KEY (id),
			FOREIGN KEY(producto_id) REFERENCES producto (id)
		);`,
	},
	{
		Name:    "salida",
		Columns: []string{"id", "producto_id", "cantidad", "fecha"},
		DDL: `CREATE TABLE IF NOT EXISTS salida (
			id INTEGER NOT NULL,
			producto_id INTEGER NOT NULL,
			cantidad INTEGER NOT NULL,
			fecha VARCHAR NOT NULL,
			PRIMARY KEY (id),
			FOREIGN KEY(producto_id) REFERENCES producto (id)
		);`,
	},
	{
		Name:    "usuario",
		Columns: []string{"id", "nombre", "email", "password", "rol"},
		DDL: `CREATE TABLE IF NOT EXISTS usuario (
			id INTEGER NOT NULL,
			nombre VARCHAR NOT NULL,
			email VARCHAR NOT NULL,
			password VARCHAR NOT NULL,
			rol VARCHAR NOT NULL,
			PRIMARY KEY (id)
		);`,
	},
	{
		Name:    "factura",
		Columns: []string{"id", "usuario_id", "fecha", "total"},
		DDL: `CREATE TABLE IF NOT EXISTS factura (
			id INTEGER NOT NULL,
			usuario_id INTEGER NOT NULL,
			fecha VARCHAR NOT NULL,
			total FLOAT NOT NULL,
			PRIMARY KEY (id),
			FOREIGN KEY(usuario_id) REFERENCES usuario (id)
		);`,
	},
	{
		Name:    "detallefactura",
		Columns: []string{"id", "factura_id", "producto_id", "cantidad", "precio"},
		DDL: `CREATE TABLE IF NOT EXISTS detallefactura (
			id INTEGER NOT NULL,
			factura_id INTEGER NOT NULL,
			producto_id INTEGER NOT NULL,
			cantidad INTEGER NOT NULL,
			precio FLOAT NOT NULL,
			PRIMARY KEY (id),
			FOREIGN KEY(factura_id) REFERENCES factura (id),
			FOREIGN KEY(producto_id) REFERENCES producto (id)
		);`,
	},
}

// Declared returns the declared tables in creation order.
func Declared() []Table {
	return slices.Clone(tables)
}

// Run creates every declared table that does not exist yet. Existing tables
// and their rows are left untouched.
func Run(ctx context.Context, db *sqlx.DB) error {
	for _, t := range tables {
		if _, err := db.ExecContext(ctx, t.DDL); err != nil {
			return fmt.Errorf("create table %s: %w", t.Name, err)
		}
	}
	return nil
}

// ColumnInfo is one row of PRAGMA table_info.
type ColumnInfo struct {
	Name         string  `db:"name"`
	Type         string  `db:"type"`
	NotNull      bool    `db:"notnull"`
	DefaultValue *string `db:"dflt_value"`
	PrimaryKey   int     `db:"pk"`
}

// Tables lists the user tables present in the store, sorted by name.
func Tables(ctx context.Context, db sqlx.QueryerContext) ([]string, error) {
	var names []string
	err := sqlx.SelectContext(ctx, db, &names,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return names, nil
}

// Columns returns the live column definitions of table in declaration order.
func Columns(ctx context.Context, db sqlx.QueryerContext, table string) ([]ColumnInfo, error) {
	var cols []ColumnInfo
	err := sqlx.SelectContext(ctx, db, &cols,
		`SELECT name, type, "notnull", dflt_value, pk FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, fmt.Errorf("table info %s: %w", table, err)
	}
	return cols, nil
}

// Verify checks that every declared table exists with exactly its declared
// column set.
func Verify(ctx context.Context, db sqlx.QueryerContext) error {
	for _, t := range tables {
		cols, err := Columns(ctx, db, t.Name)
		if err != nil {
			return err
		}
		if len(cols) == 0 {
			return fmt.Errorf("table %s is missing", t.Name)
		}
		names := make([]string, 0, len(cols))
		for _, c := range cols {
			names = append(names, c.Name)
		}
		if !slices.Equal(names, t.Columns) {
			return fmt.Errorf("table %s has columns %v, want %v", t.Name, names, t.Columns)
		}
	}
	return nil
}
