package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAdmin(t *testing.T, args ...string) (string, error) {
	t.Helper()

	databaseURL = ""
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestAdmin_SeedThenStats(t *testing.T) {
	t.Chdir(t.TempDir())
	dbURL := "sqlite:///" + filepath.Join(t.TempDir(), "holocron.db")

	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`
characters:
  - {name: Han Solo, gender: male}
planets:
  - {name: Corellia}
  - {name: Kessel}
`), 0o600))

	out, err := runAdmin(t, "schema", "--database-url", dbURL)
	require.NoError(t, err)
	assert.Contains(t, out, "schema ready (sqlite3)")

	out, err = runAdmin(t, "seed", seedPath, "--database-url", dbURL)
	require.NoError(t, err)
	assert.Contains(t, out, "planets: 2")

	out, err = runAdmin(t, "stats", "--database-url", dbURL)
	require.NoError(t, err)
	assert.Contains(t, out, "table: planets")
	assert.Contains(t, out, "rows: 2")
}

func TestAdmin_SeedRequiresFile(t *testing.T) {
	_, err := runAdmin(t, "seed")
	assert.Error(t, err)
}
