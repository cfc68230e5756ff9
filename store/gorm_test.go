package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type gormWidget struct {
	ID   string `gorm:"primaryKey;size:36"`
	Name string
	Qty  int
}

// openTestDB connects to TEST_DATABASE_URL=postgres://... or skips.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.AutoMigrate(&gormWidget{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = db.Migrator().DropTable(&gormWidget{}) })
	return db
}

func TestGormCollectionLifecycle(t *testing.T) {
	db := openTestDB(t)

	ctx := context.Background()
	c := NewGormCollection[gormWidget](db, "gorm_widgets")
	id := uuid.NewString()
	if err := c.InsertOne(ctx, &gormWidget{ID: id, Name: "bolt", Qty: 3}); err != nil {
		t.Fatalf("InsertOne: %v", err)
	}

	if _, err := c.UpdateOne(ctx, ByID(id), map[string]interface{}{"qty": 0}); err != nil {
		t.Fatalf("UpdateOne: %v", err)
	}
	got, err := c.FindOne(ctx, ByID(id))
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if got.Qty != 0 || got.Name != "bolt" {
		t.Errorf("got %+v, want qty 0 and name bolt", got)
	}

	if n, err := c.DeleteOne(ctx, ByID(id)); err != nil || n != 1 {
		t.Fatalf("DeleteOne = %d, %v; want 1, nil", n, err)
	}
	if _, err := c.FindOne(ctx, ByID(id)); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindOne after delete err = %v, want ErrNotFound", err)
	}
	if n, err := c.DeleteOne(ctx, ByID(id)); err != nil || n != 0 {
		t.Errorf("DeleteOne(missing) = %d, %v; want 0, nil", n, err)
	}
}

func TestGormCollectionUpdateOneFirstMatchOnly(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	c := NewGormCollection[gormWidget](db, "gorm_widgets")
	if err := c.InsertMany(ctx, []gormWidget{
		{ID: uuid.NewString(), Name: "twin"},
		{ID: uuid.NewString(), Name: "twin"},
	}); err != nil {
		t.Fatalf("InsertMany: %v", err)
	}

	n, err := c.UpdateOne(ctx, Filter{"name": "twin"}, map[string]interface{}{"qty": 5})
	if err != nil || n != 1 {
		t.Fatalf("UpdateOne = %d, %v; want 1, nil", n, err)
	}
	updated, err := c.Find(ctx, Filter{"qty": 5}, 0)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(updated) != 1 {
		t.Errorf("%d rows updated, want 1", len(updated))
	}
}
