package db

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:db-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&Admin{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func TestEnsureAdminCreatesHashedAccount(t *testing.T) {
	gdb := openTestDB(t)

	if err := EnsureAdmin(gdb, "admin", "super-secret"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}

	var admin Admin
	if err := gdb.Where("username = ?", "admin").First(&admin).Error; err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if admin.Password == "super-secret" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("super-secret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestEnsureAdminDoesNotOverwrite(t *testing.T) {
	gdb := openTestDB(t)

	if err := EnsureAdmin(gdb, "admin", "first-password"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	var before Admin
	gdb.Where("username = ?", "admin").First(&before)

	if err := EnsureAdmin(gdb, "admin", "second-password"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}

	var after Admin
	gdb.Where("username = ?", "admin").First(&after)
	if after.Password != before.Password {
		t.Fatal("existing account was overwritten")
	}

	var count int64
	gdb.Model(&Admin{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 admin, got %d", count)
	}
}

func TestEnsureAdminSkipsBlankCredentials(t *testing.T) {
	gdb := openTestDB(t)

	for _, tc := range [][2]string{{"", ""}, {"admin", ""}, {"", "secret"}, {"  ", "  "}} {
		if err := EnsureAdmin(gdb, tc[0], tc[1]); err != nil {
			t.Fatalf("EnsureAdmin(%q, %q) failed: %v", tc[0], tc[1], err)
		}
	}

	var count int64
	gdb.Model(&Admin{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no admin accounts, got %d", count)
	}
}

func TestInitCreatesSqliteFileAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "clinic.db")

	gdb, err := Init(path)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	for _, table := range []string{"admins", "teams", "treatments", "news", "education", "researches"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("expected table %q after migration", table)
		}
	}
}
