package comm

import (
	"encoding/json"
	"time"
)

// TopicScanRecorded carries one event per recorded card scan.
const TopicScanRecorded = "card.scan.recorded"

// ScanEvent is published to NATS whenever a public scan is recorded.
type ScanEvent struct {
	ScanID     int64     `json:"scan_id"`
	CardID     string    `json:"card_id"`
	DeviceType string    `json:"device_type"`
	ScannedAt  time.Time `json:"scanned_at"`
}

// FeedMessage is the envelope pushed to dashboard sockets by the feed service.
type FeedMessage struct {
	Type string          `json:"type"` // e.g. "scan"
	Data json.RawMessage `json:"data"`
}
