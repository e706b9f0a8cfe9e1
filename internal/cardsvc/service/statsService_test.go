package service

import (
	"context"
	"testing"
	"time"

	"github.com/avvvet/card-services/internal/cardsvc/models"
	"github.com/avvvet/card-services/internal/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statsToday = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

func TestBuildSummaryEmpty(t *testing.T) {
	summary := BuildSummary(nil, DefaultWindowDays, statsToday)

	assert.Equal(t, 0, summary.TotalScans)
	require.Len(t, summary.ScansByDay, 30)

	assert.Equal(t, "2026-08-02", summary.ScansByDay[0].Date)
	assert.Equal(t, "2026-08-31", summary.ScansByDay[29].Date)
	for _, day := range summary.ScansByDay {
		assert.Equal(t, 0, day.Count)
	}

	require.Len(t, summary.ScansByDevice, 4)
	for _, category := range device.Categories {
		assert.Equal(t, 0, summary.ScansByDevice[category])
	}
}

func TestBuildSummaryMixedWindow(t *testing.T) {
	scans := []*models.Scan{
		{DeviceType: device.IOS, ScannedAt: statsToday},
		{DeviceType: device.IOS, ScannedAt: statsToday.Add(-2 * time.Hour)},
		{DeviceType: device.Android, ScannedAt: statsToday},
		{DeviceType: device.Desktop, ScannedAt: statsToday.AddDate(0, 0, -40)},
	}

	summary := BuildSummary(scans, DefaultWindowDays, statsToday)

	assert.Equal(t, 4, summary.TotalScans)
	assert.Equal(t, map[string]int{
		device.IOS:     2,
		device.Android: 1,
		device.Desktop: 1,
		device.Unknown: 0,
	}, summary.ScansByDevice)

	// 3 scans land on today, the 40 day old scan is absent from the series
	last := summary.ScansByDay[len(summary.ScansByDay)-1]
	assert.Equal(t, "2026-08-31", last.Date)
	assert.Equal(t, 3, last.Count)

	inWindow := 0
	for _, day := range summary.ScansByDay {
		inWindow += day.Count
	}
	assert.Equal(t, 3, inWindow)
}

func TestBuildSummaryWindowBoundaries(t *testing.T) {
	scans := []*models.Scan{
		{DeviceType: device.Desktop, ScannedAt: statsToday.AddDate(0, 0, -29)}, // first day in window
		{DeviceType: device.Desktop, ScannedAt: statsToday.AddDate(0, 0, -30)}, // one day out
	}

	summary := BuildSummary(scans, DefaultWindowDays, statsToday)

	assert.Equal(t, 2, summary.TotalScans)
	assert.Equal(t, 1, summary.ScansByDay[0].Count)

	inWindow := 0
	for _, day := range summary.ScansByDay {
		inWindow += day.Count
	}
	assert.Equal(t, 1, inWindow)
}

func TestBuildSummaryUnknownDeviceBucketing(t *testing.T) {
	scans := []*models.Scan{
		{DeviceType: "", ScannedAt: statsToday},
		{DeviceType: "SmartTV", ScannedAt: statsToday},
		{DeviceType: device.Unknown, ScannedAt: statsToday},
	}

	summary := BuildSummary(scans, DefaultWindowDays, statsToday)

	assert.Equal(t, 3, summary.ScansByDevice[device.Unknown])
	require.Len(t, summary.ScansByDevice, 4)
}

func TestBuildSummaryAscendingDates(t *testing.T) {
	summary := BuildSummary(nil, 7, statsToday)

	require.Len(t, summary.ScansByDay, 7)
	for i := 1; i < len(summary.ScansByDay); i++ {
		assert.Less(t, summary.ScansByDay[i-1].Date, summary.ScansByDay[i].Date)
	}
}

func TestStatsServiceGlobalOrdersCardsByScanCount(t *testing.T) {
	cards := newFakeCardStore()
	scans := newFakeScanStore()
	svc := NewStatsService(scans, cards)

	cards.cards["a"] = &models.Card{ID: "a", FirstName: "Quiet", LastName: "Card", ScanCount: 1}
	cards.cards["b"] = &models.Card{ID: "b", FirstName: "Busy", LastName: "Card", ScanCount: 5}

	stats, err := svc.Global(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.Cards, 2)
	assert.Equal(t, "Busy Card", stats.Cards[0].CardName)
	assert.Equal(t, 5, stats.Cards[0].ScanCount)
	assert.Equal(t, "Quiet Card", stats.Cards[1].CardName)
}
