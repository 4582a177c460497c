package service

import (
	"context"

	"github.com/fastbite/delivery-service/internal/domain"
	"github.com/fastbite/delivery-service/internal/repository"
)

// PasswordHasher hashes plaintext secrets for credential provisioning.
// Satisfied by AuthService, which keeps hashing parameters in one place.
type PasswordHasher interface {
	HashPassword(plain string) (string, error)
}

// DriverInput carries driver fields from provisioning flows. Password is
// plaintext here and is hashed before anything touches the store.
type DriverInput struct {
	Name        string
	Phone       string
	Password    string
	VehicleType domain.VehicleType
	Available   bool
	Active      bool
}

// DriverService manages drivers as business entities. Login for drivers
// lives in AuthService; this service only provisions and lists them.
type DriverService struct {
	drivers repository.DriverRepository
	hasher  PasswordHasher
}

// NewDriverService builds the service.
func NewDriverService(drivers repository.DriverRepository, hasher PasswordHasher) *DriverService {
	return &DriverService{drivers: drivers, hasher: hasher}
}

func (s *DriverService) List(ctx context.Context) ([]domain.Driver, error) {
	return s.drivers.List(ctx)
}

func (s *DriverService) ListAvailable(ctx context.Context) ([]domain.Driver, error) {
	return s.drivers.ListAvailable(ctx)
}

func (s *DriverService) Get(ctx context.Context, id string) (*domain.Driver, error) {
	return s.drivers.GetByID(ctx, id)
}

// Create provisions a new driver, hashing the supplied password.
func (s *DriverService) Create(ctx context.Context, input DriverInput) (*domain.Driver, error) {
	hash, err := s.hasher.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	driver := &domain.Driver{
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: hash,
		VehicleType:  input.VehicleType,
		Available:    input.Available,
		Active:       input.Active,
	}
	if err := s.drivers.Create(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// Update modifies a driver. An empty Password leaves the stored hash
// unchanged; a non-empty one is hashed and rotated.
func (s *DriverService) Update(ctx context.Context, id string, input DriverInput) (*domain.Driver, error) {
	driver, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	driver.Name = input.Name
	driver.Phone = input.Phone
	driver.VehicleType = input.VehicleType
	driver.Available = input.Available
	driver.Active = input.Active
	if input.Password != "" {
		hash, err := s.hasher.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		driver.PasswordHash = hash
	}

	if err := s.drivers.Update(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *DriverService) Delete(ctx context.Context, id string) error {
	return s.drivers.Delete(ctx, id)
}
