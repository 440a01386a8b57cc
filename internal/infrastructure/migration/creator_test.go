package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"create companies table", "create_companies_table"},
		{"Create-Company-Base", "create_company_base"},
		{"ADD_SALARY_ROWS", "add_salary_rows"},
		{"add__people__index", "add_people_index"},
		{"Drop Column 123", "drop_column_123"},
		{"   padded   ", "padded"},
		{"fiscal!@#$code", "fiscalcode"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.in), "input %q", tt.in)
	}
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "create companies table", "Companies with bases")
	require.NoError(t, err)

	assert.Len(t, mf.Version, 14, "timestamp version is YYYYMMDDHHMMSS")
	assert.Equal(t, mf.Version+"_create_companies_table.up.sql", filepath.Base(mf.UpPath))
	assert.Equal(t, mf.Version+"_create_companies_table.down.sql", filepath.Base(mf.DownPath))

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "create companies table")
	assert.Contains(t, string(up), "Companies with bases")
	assert.Contains(t, string(up), "UP migration SQL")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "Rollback for Companies with bases")
	assert.Contains(t, string(down), "DOWN migration SQL")
}

func TestCreateMigration_CreatesMissingDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "db", "migrations")

	_, err := CreateMigration(nested, "init", "initial schema")
	require.NoError(t, err)

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func writeMigrationFixtures(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- fixture"), 0644))
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	writeMigrationFixtures(t, dir,
		"000001_create_tenants.up.sql", "000001_create_tenants.down.sql",
		"000002_create_companies.up.sql", "000002_create_companies.down.sql",
		"000003_create_ccnls.up.sql", "000003_create_ccnls.down.sql",
	)

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"000001_create_tenants",
		"000002_create_companies",
		"000003_create_ccnls",
	}, migrations)
}

func TestListMigrations_SkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	writeMigrationFixtures(t, dir,
		"000001_create_tenants.up.sql", "000001_create_tenants.down.sql",
		"README.md", "schema.dump", ".gitkeep",
	)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.up.sql"), 0755))

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_create_tenants"}, migrations)
}

func TestListMigrations_MissingDirectory(t *testing.T) {
	migrations, err := ListMigrations(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, migrations)
}
