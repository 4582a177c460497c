package dto

import (
	"time"

	"github.com/fastbite/delivery-service/internal/domain"
)

// DriverRequest payload for driver provisioning. Password is optional on
// update; when present it is hashed before persisting.
type DriverRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Password    string `json:"password,omitempty"`
	VehicleType string `json:"vehicleType"`
	Available   bool   `json:"available"`
	Active      bool   `json:"active"`
}

// DriverResponse serializes a driver. The password hash never leaves the
// service.
type DriverResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	VehicleType string    `json:"vehicleType"`
	Available   bool      `json:"available"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewDriverResponse maps the domain model.
func NewDriverResponse(d *domain.Driver) DriverResponse {
	return DriverResponse{
		ID:          d.ID,
		Name:        d.Name,
		Phone:       d.Phone,
		VehicleType: string(d.VehicleType),
		Available:   d.Available,
		Active:      d.Active,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
