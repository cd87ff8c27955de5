package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drogueria/m/internal/database"
)

func TestRunCreatesStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drogueria.db")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"--db", "sqlite:///" + path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, successMessage+"\n", stdout.String())
	_, err := os.Stat(path)
	assert.NoError(t, err)

	stdout.Reset()
	code = run(context.Background(), []string{"--db", "sqlite:///" + path}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, successMessage+"\n", stdout.String())
}

func TestRunSeedsCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drogueria.db")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{
		"--db", "sqlite:///" + path,
		"--seed", filepath.Join("..", "..", "internal", "seed", "testdata", "catalog.csv"),
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "seeded product catalog")
}

func TestRunFailsOnUnwritablePath(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing", "drogueria.db")

	code := run(context.Background(), []string{"--db", "sqlite:///" + path}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "storage initialization failed")
}

func TestRunKeepsLegacyTableWithExtraColumn(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "drogueria.db")

	legacy, err := database.Connect(ctx, path)
	require.NoError(t, err)
	_, err = legacy.ExecContext(ctx, `CREATE TABLE categoria (id INTEGER NOT NULL, nombre VARCHAR NOT NULL, codigo VARCHAR, PRIMARY KEY (id))`)
	require.NoError(t, err)
	_, err = legacy.ExecContext(ctx, `INSERT INTO categoria (nombre, codigo) VALUES ('Analgésicos', 'AN')`)
	require.NoError(t, err)
	require.NoError(t, legacy.Close())

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"--db", "sqlite:///" + path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, successMessage+"\n", stdout.String())
	assert.Contains(t, stderr.String(), "schema does not match the declared tables")

	db, err := database.Connect(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	var codigo string
	require.NoError(t, db.GetContext(ctx, &codigo, `SELECT codigo FROM categoria WHERE nombre = 'Analgésicos'`))
	assert.Equal(t, "AN", codigo)
}
