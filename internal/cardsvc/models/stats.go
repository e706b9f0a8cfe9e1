package models

// DayCount is one bucket of the trailing day series.
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// StatsSummary is derived from scan rows on every stats request, never stored.
type StatsSummary struct {
	TotalScans    int            `json:"total_scans"`
	ScansByDay    []DayCount     `json:"scans_by_day"`
	ScansByDevice map[string]int `json:"scans_by_device"`
}

// CardScanCount is the per-card line of the global stats response.
type CardScanCount struct {
	CardID    string `json:"card_id"`
	CardName  string `json:"card_name"`
	ScanCount int    `json:"scan_count"`
}

type GlobalStats struct {
	StatsSummary
	Cards []CardScanCount `json:"cards"`
}

type CardStats struct {
	StatsSummary
	CardName string `json:"card_name"`
}
