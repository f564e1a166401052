package tooldb

import (
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/neurmill/toolrec/pkg/config"
	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SqliteInMemoryDSN is a shared in-memory sqlite database. It is used by tests and when
// DB_DRIVER=sqlite is set without a DB_SQLITE_PATH.
const SqliteInMemoryDSN = "file::memory:?cache=shared"

func MakeDSNFromConfig(c config.Configer) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.GetKey("DB_USERNAME"),
		c.GetKey("DB_PASSWORD"),
		c.GetKeyWithDefault("DB_HOST", "localhost"),
		c.GetKeyWithDefault("DB_PORT", "3306"),
		c.GetKey("DB_DATABASE"))
}

const maxDBRetries = 5

// MustConnectToDB will attempt to connect to the database maxDBRetries times. If it isn't successful
// after that number of retries then it will call log.Fatalf(), which will cause the server to exit.
// Between retry attempts it will sleep for 3 seconds.
func MustConnectToDB(c config.Configer) *gorm.DB {
	var (
		err error
		db  *gorm.DB
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	dialector, what := dialectorFromConfig(c)

	retryCount := 1
	for {
		db, err = gorm.Open(dialector, gormConfig)
		switch {
		case err == nil:
			limitSqliteConnections(c, db)
			return db
		case retryCount >= maxDBRetries:
			log.Fatalf("Failed to open db (%s): %s", what, err)
		default:
			retryCount++
			time.Sleep(3 * time.Second)
		}
	}
}

func dialectorFromConfig(c config.Configer) (gorm.Dialector, string) {
	if c.GetKeyWithDefault("DB_DRIVER", "mysql") == "sqlite" {
		dsn := c.GetKeyWithDefault("DB_SQLITE_PATH", SqliteInMemoryDSN)
		return sqlite.Open(dsn), "sqlite:" + dsn
	}

	dsn := MakeDSNFromConfig(c)
	return mysql.Open(dsn), fmt.Sprintf("mysql:%s@%s/%s", c.GetKey("DB_USERNAME"),
		c.GetKeyWithDefault("DB_HOST", "localhost"), c.GetKey("DB_DATABASE"))
}

// Sqlite only allows a single writer. Limiting the pool to one connection avoids table lock
// errors when requests run concurrently.
func limitSqliteConnections(c config.Configer, db *gorm.DB) {
	if c.GetKeyWithDefault("DB_DRIVER", "mysql") != "sqlite" {
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
}

// RunMigrations creates or updates the tables for all the models.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.CADFile{},
		&model.CADFeature{},
		&model.Machine{},
		&model.Tool{},
	)
}

// Ping verifies the database connection is still usable.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}
