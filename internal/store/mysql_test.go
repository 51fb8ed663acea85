package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to MYSQL_TEST_DSN and empties every table. Tests that
// need a database are skipped when the variable is not set.
func newTestDB(t *testing.T) *MYSQLStore {
	t.Helper()
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN is not set")
	}

	ctx := context.Background()
	db, err := New(ctx, Config{
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0")
	require.NoError(t, err)
	for _, table := range []string{"order_product", "import_product", "orders", "products", "suppliers", "categories", "users"} {
		_, err = db.db.ExecContext(ctx, "DELETE FROM "+table)
		require.NoError(t, err)
	}
	_, err = db.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1")
	require.NoError(t, err)

	return db
}

func TestErrorClassification(t *testing.T) {
	ms := &MYSQLStore{}
	deadlock := fmt.Errorf("seed orders: %w", &mysql.MySQLError{Number: errDeadlock})
	dup := &mysql.MySQLError{Number: errDuplicateEntry}

	assert.True(t, ms.IsErrorRepeat(deadlock))
	assert.True(t, ms.IsErrorRepeat(&mysql.MySQLError{Number: errLockWaitTimeout}))
	assert.False(t, ms.IsErrorRepeat(dup))
	assert.True(t, ms.IsErrUniqueViolation(dup))
	assert.False(t, ms.IsErrUniqueViolation(nil))
}

func TestNowFrozenInTx(t *testing.T) {
	ms := &MYSQLStore{}
	assert.False(t, ms.Now().IsZero())

	frozen := &MYSQLStore{ts: ms.Now().Add(-time.Hour)}
	assert.Equal(t, frozen.ts, frozen.Now())
}
