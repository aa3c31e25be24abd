package infrastructure

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database pointed by dsn, creating the file first if it is an SQLite one
// which does not exist yet, and brings the schema up to date.
// DSNs starting with postgres:// or postgresql:// select PostgreSQL, anything else is an SQLite path.
func Connect(fs afero.Fs, dsn string) *gorm.DB {
	log := logrus.WithField("logger", "database")

	cfg := &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var (
		db  *gorm.DB
		err error
	)

	if isPostgres(dsn) {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		if !isMemory(dsn) {
			createFile(fs, dsn, log)
		}
		db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), cfg)
	}
	if err != nil {
		log.Fatal(err)
	}

	if isMemory(dsn) {
		// Every connection to an in-memory database gets its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal(err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Member{},
		&model.Invitation{},
		&model.TravelIdea{},
		&model.Destination{},
	); err != nil {
		log.Fatal(err)
	}
	return db
}

func createFile(fs afero.Fs, path string, log *logrus.Entry) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		log.Fatal(err)
	}
	if exists {
		return
	}
	f, err := fs.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	f.Close()
	log.Infof("created database at %s", path)
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func isMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:")
}
