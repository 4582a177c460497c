package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fastbite/delivery-service/internal/domain"
)

// In-memory repository fakes shared by the service tests.

type fakeAdminRepo struct {
	mu      sync.RWMutex
	byID    map[string]*domain.AdminUser
	byEmail map[string]*domain.AdminUser
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		byID:    make(map[string]*domain.AdminUser),
		byEmail: make(map[string]*domain.AdminUser),
	}
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *domain.AdminUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	admin.ID = uuid.NewString()
	f.byID[admin.ID] = admin
	f.byEmail[admin.Email] = admin
	return nil
}

func (f *fakeAdminRepo) CreateIfAbsent(_ context.Context, admin *domain.AdminUser) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byEmail[admin.Email]; exists {
		return false, nil
	}
	admin.ID = uuid.NewString()
	f.byID[admin.ID] = admin
	f.byEmail[admin.Email] = admin
	return true, nil
}

func (f *fakeAdminRepo) GetByID(_ context.Context, id string) (*domain.AdminUser, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	admin, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return admin, nil
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*domain.AdminUser, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	admin, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return admin, nil
}

func (f *fakeAdminRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	admin, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	admin.PasswordHash = passwordHash
	return nil
}

type fakeDriverRepo struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Driver
	byPhone map[string]*domain.Driver
}

func newFakeDriverRepo() *fakeDriverRepo {
	return &fakeDriverRepo{
		byID:    make(map[string]*domain.Driver),
		byPhone: make(map[string]*domain.Driver),
	}
}

func (f *fakeDriverRepo) Create(_ context.Context, driver *domain.Driver) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	driver.ID = uuid.NewString()
	f.byID[driver.ID] = driver
	f.byPhone[driver.Phone] = driver
	return nil
}

func (f *fakeDriverRepo) CreateIfAbsent(_ context.Context, driver *domain.Driver) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byPhone[driver.Phone]; exists {
		return false, nil
	}
	driver.ID = uuid.NewString()
	f.byID[driver.ID] = driver
	f.byPhone[driver.Phone] = driver
	return true, nil
}

func (f *fakeDriverRepo) Update(_ context.Context, driver *domain.Driver) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.byID[driver.ID]
	if !ok {
		return domain.ErrNotFound
	}
	delete(f.byPhone, existing.Phone)
	f.byID[driver.ID] = driver
	f.byPhone[driver.Phone] = driver
	return nil
}

func (f *fakeDriverRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	driver, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	delete(f.byPhone, driver.Phone)
	return nil
}

func (f *fakeDriverRepo) GetByID(_ context.Context, id string) (*domain.Driver, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	driver, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return driver, nil
}

func (f *fakeDriverRepo) GetByPhone(_ context.Context, phone string) (*domain.Driver, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	driver, ok := f.byPhone[phone]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return driver, nil
}

func (f *fakeDriverRepo) List(_ context.Context) ([]domain.Driver, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	drivers := make([]domain.Driver, 0, len(f.byID))
	for _, d := range f.byID {
		drivers = append(drivers, *d)
	}
	return drivers, nil
}

func (f *fakeDriverRepo) ListAvailable(_ context.Context) ([]domain.Driver, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	drivers := make([]domain.Driver, 0)
	for _, d := range f.byID {
		if d.Available && d.Active {
			drivers = append(drivers, *d)
		}
	}
	return drivers, nil
}

type fakeSessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session

	// failCreates makes the next N Create calls return ErrTokenExists.
	failCreates int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreates > 0 {
		f.failCreates--
		return domain.ErrTokenExists
	}
	if _, exists := f.sessions[session.Token]; exists {
		return domain.ErrTokenExists
	}
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, token string) (*domain.Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	session, ok := f.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[token]; !ok {
		return false, nil
	}
	delete(f.sessions, token)
	return true, nil
}

type fakeOrderRepo struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order.ID = uuid.NewString()
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	orders := make([]domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		orders = append(orders, *o)
	}
	return orders, nil
}

func (f *fakeOrderRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]domain.Order, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	orders := make([]domain.Order, 0)
	for _, o := range f.orders {
		if o.RestaurantID == restaurantID {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) ListByStatus(_ context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	orders := make([]domain.Order, 0)
	for _, o := range f.orders {
		if o.Status == status {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

type fakeRestaurantRepo struct {
	mu          sync.RWMutex
	restaurants map[string]*domain.Restaurant
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{restaurants: make(map[string]*domain.Restaurant)}
}

func (f *fakeRestaurantRepo) Create(_ context.Context, restaurant *domain.Restaurant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	restaurant.ID = uuid.NewString()
	restaurant.CreatedAt = time.Now()
	restaurant.UpdatedAt = restaurant.CreatedAt
	f.restaurants[restaurant.ID] = restaurant
	return nil
}

func (f *fakeRestaurantRepo) Update(_ context.Context, restaurant *domain.Restaurant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.restaurants[restaurant.ID]
	if !ok {
		return domain.ErrNotFound
	}
	restaurant.CreatedAt = existing.CreatedAt
	restaurant.UpdatedAt = time.Now()
	f.restaurants[restaurant.ID] = restaurant
	return nil
}

func (f *fakeRestaurantRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.restaurants[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.restaurants, id)
	return nil
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, id string) (*domain.Restaurant, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	restaurant, ok := f.restaurants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return restaurant, nil
}

func (f *fakeRestaurantRepo) List(_ context.Context) ([]domain.Restaurant, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	restaurants := make([]domain.Restaurant, 0, len(f.restaurants))
	for _, r := range f.restaurants {
		restaurants = append(restaurants, *r)
	}
	return restaurants, nil
}

func (f *fakeRestaurantRepo) ListByCategory(_ context.Context, categoryID string) ([]domain.Restaurant, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	restaurants := make([]domain.Restaurant, 0)
	for _, r := range f.restaurants {
		if r.CategoryID == categoryID {
			restaurants = append(restaurants, *r)
		}
	}
	return restaurants, nil
}

type fakeUISettingRepo struct {
	mu       sync.RWMutex
	settings map[string]*domain.UISetting
}

func newFakeUISettingRepo() *fakeUISettingRepo {
	return &fakeUISettingRepo{settings: make(map[string]*domain.UISetting)}
}

func (f *fakeUISettingRepo) Get(_ context.Context, key string) (*domain.UISetting, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	setting, ok := f.settings[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return setting, nil
}

func (f *fakeUISettingRepo) List(_ context.Context) ([]domain.UISetting, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	settings := make([]domain.UISetting, 0, len(f.settings))
	for _, s := range f.settings {
		settings = append(settings, *s)
	}
	return settings, nil
}

func (f *fakeUISettingRepo) Upsert(_ context.Context, setting *domain.UISetting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	setting.UpdatedAt = time.Now()
	f.settings[setting.Key] = setting
	return nil
}

func (f *fakeUISettingRepo) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.settings[key]; !ok {
		return domain.ErrNotFound
	}
	delete(f.settings, key)
	return nil
}
