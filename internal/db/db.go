package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the database described by databaseURL and runs the automatic
// migrations. Postgres URLs get the postgres driver, everything else is
// treated as a sqlite file path. The returned handle is safe for
// concurrent use and is passed to services explicitly.
func Init(databaseURL string) (*gorm.DB, error) {
	dsn := strings.TrimSpace(databaseURL)
	if dsn == "" {
		dsn = "clinic.db"
	}

	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	var (
		gdb *gorm.DB
		err error
	)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		gdb, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		if err := ensureParentDir(dsn); err != nil {
			return nil, err
		}
		gdb, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, err
	}

	if err := gdb.AutoMigrate(
		&Admin{},
		&Team{},
		&Treatment{},
		&Project{},
		&Sponsor{},
		&Research{},
		&MediaItem{},
		&Innovation{},
		&News{},
		&Faq{},
		&Education{},
	); err != nil {
		return nil, err
	}

	return gdb, nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
