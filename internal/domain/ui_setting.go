package domain

import "time"

// UISetting is a key/value pair controlling storefront presentation.
type UISetting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
