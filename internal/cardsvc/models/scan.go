package models

import (
	"time"
)

// Scan represents the scans table in the database.
// Rows are append-only; a scan is never updated after insert.
type Scan struct {
	ID         int64     `json:"id"`
	CardID     string    `json:"card_id"`
	ScannedAt  time.Time `json:"scanned_at"`
	UserAgent  string    `json:"user_agent,omitempty"`
	DeviceType string    `json:"device_type"`
}
