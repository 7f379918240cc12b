package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveCreatesNestedDirs(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")
	store, err := NewLocalStorage(base)
	require.NoError(t, err)

	path, err := store.Save(filepath.Join("reports", "informe.pdf"), []byte("%PDF-1.3"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "reports", "informe.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(data))
}

func TestLocalStorageSaveStream(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := store.SaveStream("counts.csv", strings.NewReader("table,rows\nstudents,3\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "table,rows\nstudents,3\n", string(data))
}

func TestLocalStoragePathKeepsAbsolute(t *testing.T) {
	store := &LocalStorage{baseDir: "exports"}
	abs := filepath.Join(t.TempDir(), "x.csv")
	assert.Equal(t, abs, store.Path(abs))
	assert.Equal(t, filepath.Join("exports", "x.csv"), store.Path("x.csv"))
}
