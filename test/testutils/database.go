package testutils

import (
	"testing"

	"github.com/hearthhq/hearth/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDatabase opens a migrated in-memory SQLite database closed at test end
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.SetupDatabase("", logger.Silent)
	require.NoError(t, err, "Failed to setup test database")

	t.Cleanup(func() {
		_ = sqlite.Close(db)
	})
	return db
}
