package service

import (
	"context"
	"testing"
	"time"

	"github.com/fastbite/delivery-service/internal/domain"
)

func TestDashboardService_Build(t *testing.T) {
	orders := newFakeOrderRepo()
	restaurants := newFakeRestaurantRepo()
	drivers := newFakeDriverRepo()
	svc := NewDashboardService(restaurants, orders, drivers)

	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := restaurants.Create(ctx, &domain.Restaurant{Name: "R", CategoryID: "c"}); err != nil {
			t.Fatalf("seed restaurant: %v", err)
		}
	}

	// Three drivers: one available+active, one unavailable, one deactivated.
	for _, d := range []*domain.Driver{
		{Name: "a", Phone: "+1", Available: true, Active: true},
		{Name: "b", Phone: "+2", Available: false, Active: true},
		{Name: "c", Phone: "+3", Available: true, Active: false},
	} {
		if err := drivers.Create(ctx, d); err != nil {
			t.Fatalf("seed driver: %v", err)
		}
	}

	yesterday := now.Add(-24 * time.Hour)
	startOfDay := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	for _, o := range []*domain.Order{
		{TotalAmount: 10, Status: domain.OrderStatusPending, CreatedAt: yesterday},
		{TotalAmount: 20, Status: domain.OrderStatusDelivered, CreatedAt: startOfDay},
		{TotalAmount: 5, Status: domain.OrderStatusPending, CreatedAt: now},
	} {
		if err := orders.Create(ctx, o); err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	dashboard, err := svc.Build(ctx)
	if err != nil {
		t.Fatalf("build dashboard: %v", err)
	}

	stats := dashboard.Stats
	if stats.TotalRestaurants != 2 {
		t.Errorf("TotalRestaurants = %d, want 2", stats.TotalRestaurants)
	}
	if stats.TotalOrders != 3 {
		t.Errorf("TotalOrders = %d, want 3", stats.TotalOrders)
	}
	if stats.TotalDrivers != 3 {
		t.Errorf("TotalDrivers = %d, want 3", stats.TotalDrivers)
	}
	if stats.ActiveDrivers != 1 {
		t.Errorf("ActiveDrivers = %d, want 1", stats.ActiveDrivers)
	}
	if stats.PendingOrders != 2 {
		t.Errorf("PendingOrders = %d, want 2", stats.PendingOrders)
	}
	if stats.TodayOrders != 2 {
		t.Errorf("TodayOrders = %d, want 2", stats.TodayOrders)
	}
	if stats.TotalRevenue != 35 {
		t.Errorf("TotalRevenue = %v, want 35", stats.TotalRevenue)
	}
	if stats.TodayRevenue != 25 {
		t.Errorf("TodayRevenue = %v, want 25", stats.TodayRevenue)
	}
	if len(dashboard.RecentOrders) != 3 {
		t.Errorf("RecentOrders length = %d, want 3", len(dashboard.RecentOrders))
	}
}

func TestDashboardService_Build_CapsRecentOrders(t *testing.T) {
	orders := newFakeOrderRepo()
	restaurants := newFakeRestaurantRepo()
	drivers := newFakeDriverRepo()
	svc := NewDashboardService(restaurants, orders, drivers)
	ctx := context.Background()

	for i := 0; i < recentOrderCount+5; i++ {
		if err := orders.Create(ctx, &domain.Order{TotalAmount: 1, Status: domain.OrderStatusPending}); err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	dashboard, err := svc.Build(ctx)
	if err != nil {
		t.Fatalf("build dashboard: %v", err)
	}
	if len(dashboard.RecentOrders) != recentOrderCount {
		t.Errorf("RecentOrders length = %d, want %d", len(dashboard.RecentOrders), recentOrderCount)
	}
}
