package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadSeedFile(t *testing.T) {
	path := writeSeed(t, `[
		{"agencia": 10, "conta": 1001, "name": "Ana", "balance": 10.5},
		{"agencia": 20, "conta": 2001, "name": "Davi", "balance": "500"}
	]`)

	entries, err := readSeedFile(path)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Ana", entries[0].Name)
	assert.Equal(t, 10, *entries[0].Agencia)
	assert.Equal(t, "10.5", entries[0].Balance.String())
	assert.Equal(t, "500", entries[1].Balance.String())
}

func TestReadSeedFile_MissingName(t *testing.T) {
	path := writeSeed(t, `[{"agencia": 10, "conta": 1001, "balance": 1}]`)

	_, err := readSeedFile(path)

	assert.ErrorContains(t, err, "entry 0")
}

func TestReadSeedFile_Malformed(t *testing.T) {
	path := writeSeed(t, `{"agencia": 10}`)

	_, err := readSeedFile(path)

	assert.ErrorContains(t, err, "decoding")
}

func TestReadSeedFile_ZeroCodes(t *testing.T) {
	path := writeSeed(t, `[{"agencia": 0, "conta": 0, "name": "Zero", "balance": 1}]`)

	entries, err := readSeedFile(path)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, *entries[0].Agencia)
	assert.Equal(t, 0, *entries[0].Conta)
}

func TestReadSeedFile_MissingConta(t *testing.T) {
	path := writeSeed(t, `[{"agencia": 10, "name": "Ana", "balance": 1}]`)

	_, err := readSeedFile(path)

	assert.ErrorContains(t, err, "entry 0")
}
