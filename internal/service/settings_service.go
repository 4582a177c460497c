package service

import (
	"context"

	"github.com/fastbite/delivery-service/internal/domain"
	"github.com/fastbite/delivery-service/internal/repository"
)

// SettingsService wraps UI settings persistence.
type SettingsService struct {
	settings repository.UISettingRepository
}

// NewSettingsService builds the service.
func NewSettingsService(settings repository.UISettingRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

func (s *SettingsService) List(ctx context.Context) ([]domain.UISetting, error) {
	return s.settings.List(ctx)
}

func (s *SettingsService) Get(ctx context.Context, key string) (*domain.UISetting, error) {
	return s.settings.Get(ctx, key)
}

// Set writes the value for a key, creating the setting when missing.
func (s *SettingsService) Set(ctx context.Context, key, value string) (*domain.UISetting, error) {
	setting := &domain.UISetting{Key: key, Value: value}
	if err := s.settings.Upsert(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingsService) Delete(ctx context.Context, key string) error {
	return s.settings.Delete(ctx, key)
}
