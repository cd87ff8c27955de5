package migrations_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"drogueria/m/internal/migrations"
)

func openRaw(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite", filepath.Join(t.TempDir(), "drogueria.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunCreatesDeclaredColumns(t *testing.T) {
	ctx := context.Background()
	db := openRaw(t)
	require.NoError(t, migrations.Run(ctx, db))

	want := map[string][]string{
		"categoria":      {"id", "nombre"},
		"proveedor":      {"id", "nombre", "contacto", "telefono", "email"},
		"producto":       {"id", "nombre", "descripcion", "precio_compra", "precio_venta", "stock", "categoria_id", "proveedor_id"},
		"entrada":        {"id", "producto_id", "cantidad", "fecha"},
		"salida":         {"id", "producto_id", "cantidad", "fecha"},
		"usuario":        {"id", "nombre", "email", "password", "rol"},
		"factura":        {"id", "usuario_id", "fecha", "total"},
		"detallefactura": {"id", "factura_id", "producto_id", "cantidad", "precio"},
	}
	for table, columns := range want {
		cols, err := migrations.Columns(ctx, db, table)
		require.NoError(t, err)
		names := make([]string, 0, len(cols))
		for _, c := range cols {
			names = append(names, c.Name)
		}
		assert.Equal(t, columns, names, table)
		assert.Equal(t, 1, cols[0].PrimaryKey, table)
	}
	assert.Len(t, migrations.Declared(), len(want))
}

func TestRunNullabilityAndDefaults(t *testing.T) {
	ctx := context.Background()
	db := openRaw(t)
	require.NoError(t, migrations.Run(ctx, db))

	cols, err := migrations.Columns(ctx, db, "producto")
	require.NoError(t, err)
	byName := map[string]migrations.ColumnInfo{}
	for _, c := range cols {
		byName[c.Name] = c
	}
	assert.True(t, byName["nombre"].NotNull)
	assert.False(t, byName["descripcion"].NotNull)
	assert.False(t, byName["categoria_id"].NotNull)
	assert.Equal(t, "FLOAT", byName["precio_venta"].Type)
	require.NotNil(t, byName["stock"].DefaultValue)
	assert.Equal(t, "0", *byName["stock"].DefaultValue)

	res, err := db.ExecContext(ctx, `INSERT INTO producto (nombre, precio_compra, precio_venta) VALUES ('Aspirina', 1.0, 2.0)`)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	var stock int
	require.NoError(t, db.GetContext(ctx, &stock, `SELECT stock FROM producto WHERE id = ?`, id))
	assert.Zero(t, stock)
}

func TestRunTwiceKeepsRows(t *testing.T) {
	ctx := context.Background()
	db := openRaw(t)
	require.NoError(t, migrations.Run(ctx, db))
	_, err := db.ExecContext(ctx, `INSERT INTO usuario (nombre, email, password, rol) VALUES ('a', 'a@b', 'x', 'admin')`)
	require.NoError(t, err)

	require.NoError(t, migrations.Run(ctx, db))
	require.NoError(t, migrations.Verify(ctx, db))

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM usuario`))
	assert.Equal(t, 1, count)
}

func TestVerifyDetectsDrift(t *testing.T) {
	ctx := context.Background()
	db := openRaw(t)

	assert.ErrorContains(t, migrations.Verify(ctx, db), "missing")

	_, err := db.ExecContext(ctx, `CREATE TABLE categoria (id INTEGER PRIMARY KEY, nombre VARCHAR, codigo VARCHAR)`)
	require.NoError(t, err)
	require.NoError(t, migrations.Run(ctx, db))
	assert.ErrorContains(t, migrations.Verify(ctx, db), "categoria")
}
