package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/anatolianspine/clinic-api/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:content-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Treatment{}, &db.Team{}, &db.News{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func TestContentServiceCreateAndGet(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewContentService[db.Treatment](gdb)

	item := &db.Treatment{Title: "Skolyoz Tedavisi", Slug: "skolyoz-tedavisi", Summary: "summary"}
	if err := svc.Create(item); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if item.ID == 0 {
		t.Fatal("expected assigned id after create")
	}

	got, err := svc.GetByID(item.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got.Title != "Skolyoz Tedavisi" || got.Slug != "skolyoz-tedavisi" {
		t.Fatalf("unexpected record: %+v", got)
	}

	bySlug, err := svc.GetBySlug("skolyoz-tedavisi")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if bySlug.ID != item.ID {
		t.Fatalf("slug lookup returned id %d, want %d", bySlug.ID, item.ID)
	}
}

func TestContentServiceGetMissingReturnsNotFound(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewContentService[db.Treatment](gdb)

	if _, err := svc.GetByID(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetBySlug("no-such-slug"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContentServiceDuplicateSlugConflict(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewContentService[db.Treatment](gdb)

	if err := svc.Create(&db.Treatment{Title: "A", Slug: "same-slug"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if err := svc.Create(&db.Treatment{Title: "B", Slug: "same-slug"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	var count int64
	gdb.Model(&db.Treatment{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 record after rejected duplicate, got %d", count)
	}
}

func TestContentServicePartialUpdateKeepsOtherFields(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewContentService[db.Treatment](gdb)

	item := &db.Treatment{Title: "Old Title", Slug: "stable-slug", Summary: "old summary"}
	if err := svc.Create(item); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(item.ID, map[string]any{"title": "New Title"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "New Title" {
		t.Fatalf("title not updated: %+v", updated)
	}
	if updated.Slug != "stable-slug" || updated.Summary != "old summary" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestContentServiceUpdateMissingReturnsNotFound(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewContentService[db.Treatment](gdb)

	if _, err := svc.Update(42, map[string]any{"title": "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContentServiceUpdateDuplicateSlugConflict(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewContentService[db.Treatment](gdb)

	if err := svc.Create(&db.Treatment{Title: "A", Slug: "slug-a"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second := &db.Treatment{Title: "B", Slug: "slug-b"}
	if err := svc.Create(second); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(second.ID, map[string]any{"slug": "slug-a"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestContentServiceDelete(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewContentService[db.Treatment](gdb)

	item := &db.Treatment{Title: "Gone", Slug: "gone"}
	if err := svc.Create(item); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(item.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestContentServiceListNewestFirst(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewContentService[db.News](gdb)

	older := &db.News{Title: "Older", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &db.News{Title: "Newer", CreatedAt: time.Now()}
	if err := gdb.Create(older).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := gdb.Create(newer).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "Newer" || items[1].Title != "Older" {
		t.Fatalf("unexpected order: %q, %q", items[0].Title, items[1].Title)
	}
}

func TestOrderedContentServiceListAscending(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewOrderedContentService[db.Team](gdb, "order")

	for _, m := range []db.Team{
		{Name: "Third", Title: "Doctor", Order: 3},
		{Name: "First", Title: "Doctor", Order: 1},
		{Name: "Second", Title: "Doctor", Order: 2},
	} {
		member := m
		if err := svc.Create(&member); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	names := []string{items[0].Name, items[1].Name, items[2].Name}
	want := []string{"First", "Second", "Third"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("unexpected order: %v", names)
		}
	}
}
