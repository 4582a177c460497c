package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fastbite/delivery-service/internal/domain"
)

func TestSettingsService_SetGetDelete(t *testing.T) {
	svc := NewSettingsService(newFakeUISettingRepo())
	ctx := context.Background()

	setting, err := svc.Set(ctx, "theme", "dark")
	if err != nil {
		t.Fatalf("set setting: %v", err)
	}
	if setting.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be stamped on write")
	}

	got, err := svc.Get(ctx, "theme")
	if err != nil {
		t.Fatalf("get setting: %v", err)
	}
	if got.Value != "dark" {
		t.Errorf("expected value %q, got %q", "dark", got.Value)
	}

	if err := svc.Delete(ctx, "theme"); err != nil {
		t.Fatalf("delete setting: %v", err)
	}
	if _, err := svc.Get(ctx, "theme"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, "theme"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting a missing key, got %v", err)
	}
}
