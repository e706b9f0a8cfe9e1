package models

import (
	"time"
)

// Card represents the cards table in the database.
// ScanCount and PhotoURL are derived for API responses and are not stored.
type Card struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Website   string    `json:"website,omitempty"`
	PhotoPath string    `json:"photo_path,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	ScanCount int       `json:"scan_count"`
	PhotoURL  string    `json:"photo_url,omitempty"`
}

// FullName is used for vCard downloads and stat breakdowns.
func (c *Card) FullName() string {
	return c.FirstName + " " + c.LastName
}
