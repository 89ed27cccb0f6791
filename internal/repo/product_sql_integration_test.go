package repo

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/rogerio-castellano/product-catalog/internal/db"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// openTestDatabase connects to TEST_DATABASE_URL, applies the migrations and
// empties the products table. Tests are skipped when the variable is unset.
func openTestDatabase(t *testing.T) *sql.DB {
	t.Helper()
	dbUrl := os.Getenv("TEST_DATABASE_URL")
	if dbUrl == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	database, err := db.Connect(context.Background(), dbUrl)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database))
	truncate(t, database)
	return database
}

func truncate(t *testing.T, database *sql.DB) {
	t.Helper()
	_, err := database.Exec(`TRUNCATE products RESTART IDENTITY`)
	require.NoError(t, err)
}

func TestPostgresProductRepository(t *testing.T) {
	database := openTestDatabase(t)
	runRepositoryContract(t, func(t *testing.T) ProductRepository {
		truncate(t, database)
		return NewPostgresProductRepository(database)
	})
}

func TestGormProductRepository(t *testing.T) {
	database := openTestDatabase(t)
	gdb, err := db.OpenGorm(database, zap.NewNop())
	require.NoError(t, err)

	runRepositoryContract(t, func(t *testing.T) ProductRepository {
		truncate(t, database)
		return NewGormProductRepository(gdb)
	})
}
