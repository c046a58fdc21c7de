package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/rnrran/HUBDAM-KP/internal/pkg/database"
)

// testDatabase connects to the database named by TEST_DATABASE_URL and runs
// migrations. Tests are skipped when the variable is unset so the suite can
// run without a local PostgreSQL.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration test")
	}

	if err := database.Migrate(dsn); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(db.Close)

	return db
}

func truncateTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	for _, table := range []string{"refresh_tokens", "payrolls", "users"} {
		if _, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}
