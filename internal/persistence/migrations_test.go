package persistence

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestRunMigrations_RequiresPool(t *testing.T) {
	err := RunMigrations(context.Background(), nil, zap.NewNop())
	if err == nil {
		t.Fatal("expected an error when no pool is configured")
	}
}
