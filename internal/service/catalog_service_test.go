package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fastbite/delivery-service/internal/domain"
)

func TestCatalogService_UpdateRestaurant_RefreshesTimestamps(t *testing.T) {
	restaurants := newFakeRestaurantRepo()
	svc := NewCatalogService(nil, restaurants, nil)
	ctx := context.Background()

	seeded := seedRestaurant(t, restaurants)
	if seeded.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be stamped on create")
	}

	update := &domain.Restaurant{
		ID:         seeded.ID,
		Name:       "Falafel Palace",
		CategoryID: seeded.CategoryID,
		Open:       false,
	}
	if err := svc.UpdateRestaurant(ctx, update); err != nil {
		t.Fatalf("update restaurant: %v", err)
	}

	if !update.CreatedAt.Equal(seeded.CreatedAt) {
		t.Errorf("update must carry the original CreatedAt, got %v want %v", update.CreatedAt, seeded.CreatedAt)
	}
	if update.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be stamped on update")
	}
	if update.UpdatedAt.Before(update.CreatedAt) {
		t.Errorf("UpdatedAt %v must not precede CreatedAt %v", update.UpdatedAt, update.CreatedAt)
	}

	missing := &domain.Restaurant{ID: "no-such-id", Name: "Ghost"}
	if err := svc.UpdateRestaurant(ctx, missing); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown restaurant, got %v", err)
	}
}
