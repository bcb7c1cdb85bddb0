package history

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestInMemoryRepositoryRoundTrip(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	g := &Generation{
		ID:         "0b5c6c7e-1111-2222-3333-444455556666",
		Restaurant: "Le Bistrot",
		Variants:   []string{"v1", "v2"},
		Status:     StatusGenerated,
		Articles:   12,
		Documents:  []string{"menus.json", "articles.json"},
		CreatedAt:  time.Now().UTC(),
	}
	if err := repo.Save(ctx, g); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, g.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Restaurant != "Le Bistrot" || got.Articles != 12 {
		t.Fatalf("unexpected record: %+v", got)
	}

	reason := "2 of 2 uploads failed"
	if err := repo.UpdateStatus(ctx, g.ID, StatusPublishFailed, &reason); err != nil {
		t.Fatal(err)
	}
	got, _ = repo.Get(ctx, g.ID)
	if got.Status != StatusPublishFailed || got.Error == nil {
		t.Fatalf("status not updated: %+v", got)
	}
}

func TestInMemoryRepositoryNotFound(t *testing.T) {
	repo := NewInMemoryRepository()

	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.UpdateStatus(context.Background(), "missing", StatusPublished, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
