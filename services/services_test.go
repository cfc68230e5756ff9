package services

import (
	"testing"
	"time"

	"inventory-backend/store"

	"github.com/bwmarrin/snowflake"
)

func ptr[T any](v T) *T { return &v }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestServices(t *testing.T) (*Services, *store.Collections) {
	t.Helper()
	collections, err := store.NewMemoryCollections()
	if err != nil {
		t.Fatalf("NewMemoryCollections: %v", err)
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake.NewNode: %v", err)
	}
	return New(collections, node), collections
}
