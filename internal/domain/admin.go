package domain

import "time"

// AdminUser models an administrative operator of the platform.
type AdminUser struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
