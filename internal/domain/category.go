package domain

import "time"

// Category groups restaurants in the storefront.
type Category struct {
	ID        string
	Name      string
	ImageURL  string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}
