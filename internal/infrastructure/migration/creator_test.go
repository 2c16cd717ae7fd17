package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add products table", "add_products_table"},
		{"Add-Products-Table", "add_products_table"},
		{"ADD_PRODUCTS_TABLE", "add_products_table"},
		{"add__products__table", "add_products_table"},
		{"Add Reviews 123", "add_reviews_123"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugify(tt.input))
		})
	}
}

func TestCreate(t *testing.T) {
	tmpDir := t.TempDir()

	fp, err := Create(tmpDir, "add products table")
	require.NoError(t, err)
	require.NotNil(t, fp)

	assert.Len(t, fp.Version, 14)
	assert.True(t, strings.HasSuffix(fp.UpPath, ".up.sql"))
	assert.True(t, strings.HasSuffix(fp.DownPath, ".down.sql"))

	upBase := strings.TrimSuffix(filepath.Base(fp.UpPath), ".up.sql")
	downBase := strings.TrimSuffix(filepath.Base(fp.DownPath), ".down.sql")
	assert.Equal(t, upBase, downBase)

	upContent, err := os.ReadFile(fp.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(upContent), "add products table")

	_, err = os.Stat(fp.DownPath)
	assert.NoError(t, err)
}

func TestCreate_MakesDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "nested", "migrations")

	fp, err := Create(nested, "init schema")
	require.NoError(t, err)
	require.NotNil(t, fp)

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestList(t *testing.T) {
	tmpDir := t.TempDir()

	files := []string{
		"000001_init_schema.up.sql",
		"000001_init_schema.down.sql",
		"000002_add_carts.up.sql",
		"000002_add_carts.down.sql",
		"README.md",
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, f), []byte("-- test"), 0o644))
	}

	names, err := List(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_init_schema", "000002_add_carts"}, names)
}

func TestList_NonexistentDirectory(t *testing.T) {
	names, err := List("/nonexistent/path/to/migrations")
	require.NoError(t, err)
	assert.Empty(t, names)
}
