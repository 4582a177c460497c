package domain

import "time"

// VehicleType enumerates how a driver delivers.
type VehicleType string

const (
	VehicleMotorbike VehicleType = "MOTORBIKE"
	VehicleCar       VehicleType = "CAR"
	VehicleBicycle   VehicleType = "BICYCLE"
)

// Driver is both the credential record for driver login (keyed on phone)
// and the business entity assigned to orders.
type Driver struct {
	ID           string
	Name         string
	Phone        string
	PasswordHash string
	VehicleType  VehicleType
	Available    bool
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
