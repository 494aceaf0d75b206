package repo

import (
	"SwapMarket/internal/model"
	"context"
	"testing"

	"github.com/google/uuid"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует отдельную in-memory SQLite (modernc.org/sqlite) на каждый тест
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

// mkUser создаёт пользователя прямо в БД
func mkUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	u := &model.User{Name: name, Email: name + "@example.com", Password: "hash"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// mkItem создаёт вещь владельца
func mkItem(t *testing.T, db *gorm.DB, owner int64, title string) *model.Item {
	t.Helper()
	it := &model.Item{
		ID:          uuid.NewString(),
		UserID:      owner,
		Title:       title,
		Description: title + " description",
		ImageURL:    "https://img.example.com/" + title + ".jpg",
		Category:    model.CategoryOther,
		Condition:   model.ConditionUsed,
	}
	if err := NewItemRepository(db).Create(context.Background(), it); err != nil {
		t.Fatalf("create item: %v", err)
	}
	return it
}
