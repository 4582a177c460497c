package service

import (
	"context"
	"time"

	"github.com/fastbite/delivery-service/internal/domain"
	"github.com/fastbite/delivery-service/internal/repository"
)

// DashboardStats aggregates platform-wide counters for the admin panel.
type DashboardStats struct {
	TotalRestaurants int     `json:"total_restaurants"`
	TotalOrders      int     `json:"total_orders"`
	TotalDrivers     int     `json:"total_drivers"`
	ActiveDrivers    int     `json:"active_drivers"`
	TodayOrders      int     `json:"today_orders"`
	PendingOrders    int     `json:"pending_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
	TodayRevenue     float64 `json:"today_revenue"`
}

// Dashboard bundles the stats with the most recent orders.
type Dashboard struct {
	Stats        DashboardStats `json:"stats"`
	RecentOrders []domain.Order `json:"recent_orders"`
}

const recentOrderCount = 10

// DashboardService computes admin dashboard aggregates.
type DashboardService struct {
	restaurants repository.RestaurantRepository
	orders      repository.OrderRepository
	drivers     repository.DriverRepository

	now func() time.Time
}

// NewDashboardService builds the service.
func NewDashboardService(
	restaurants repository.RestaurantRepository,
	orders repository.OrderRepository,
	drivers repository.DriverRepository,
) *DashboardService {
	return &DashboardService{
		restaurants: restaurants,
		orders:      orders,
		drivers:     drivers,
		now:         time.Now,
	}
}

// Build assembles the dashboard snapshot.
func (s *DashboardService) Build(ctx context.Context) (*Dashboard, error) {
	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := s.drivers.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	year, month, day := now.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	stats := DashboardStats{
		TotalRestaurants: len(restaurants),
		TotalOrders:      len(orders),
		TotalDrivers:     len(drivers),
	}
	for _, d := range drivers {
		if d.Available && d.Active {
			stats.ActiveDrivers++
		}
	}
	for _, o := range orders {
		stats.TotalRevenue += o.TotalAmount
		if o.Status == domain.OrderStatusPending {
			stats.PendingOrders++
		}
		if !o.CreatedAt.Before(startOfDay) {
			stats.TodayOrders++
			stats.TodayRevenue += o.TotalAmount
		}
	}

	recent := orders
	if len(recent) > recentOrderCount {
		recent = recent[:recentOrderCount]
	}

	return &Dashboard{Stats: stats, RecentOrders: recent}, nil
}
