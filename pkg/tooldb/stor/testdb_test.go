package stor

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/neurmill/toolrec/pkg/tooldb"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type nullLogger struct{}

func (l *nullLogger) Printf(_ string, _ ...interface{}) {
}

// newTestDB opens a migrated sqlite in-memory database private to the test.
func newTestDB(t *testing.T) *gorm.DB {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	gormLogger := logger.New(&nullLogger{},
		logger.Config{
			SlowThreshold:             time.Second * 5,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		})
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger})
	require.NoErrorf(t, err, "gorm.Open failed: %s", err)

	sqlitedb, err := db.DB()
	require.NoError(t, err)
	sqlitedb.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlitedb.Close() })

	err = tooldb.RunMigrations(db)
	require.NoErrorf(t, err, "Migration failed with: %s", err)

	return db
}
