package service

import (
	"context"
	"sort"
	"time"

	"github.com/avvvet/card-services/internal/cardsvc/models"
	"github.com/avvvet/card-services/internal/device"
)

// DefaultWindowDays is the trailing window of the day series.
const DefaultWindowDays = 30

const dayFormat = "2006-01-02"

type StatsService struct {
	scans ScanStore
	cards CardStore
}

func NewStatsService(scans ScanStore, cards CardStore) *StatsService {
	return &StatsService{scans: scans, cards: cards}
}

// Global aggregates all scans plus a per-card breakdown sorted by
// scan count descending.
func (s *StatsService) Global(ctx context.Context) (*models.GlobalStats, error) {
	scans, err := s.scans.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.GlobalStats{
		StatsSummary: BuildSummary(scans, DefaultWindowDays, time.Now().UTC()),
		Cards:        make([]models.CardScanCount, 0, len(cards)),
	}

	for _, card := range cards {
		stats.Cards = append(stats.Cards, models.CardScanCount{
			CardID:    card.ID,
			CardName:  card.FullName(),
			ScanCount: card.ScanCount,
		})
	}

	sort.SliceStable(stats.Cards, func(i, j int) bool {
		return stats.Cards[i].ScanCount > stats.Cards[j].ScanCount
	})

	return stats, nil
}

// Card aggregates the scans of a single card.
func (s *StatsService) Card(ctx context.Context, card *models.Card) (*models.CardStats, error) {
	scans, err := s.scans.ListByCardID(ctx, card.ID)
	if err != nil {
		return nil, err
	}

	return &models.CardStats{
		StatsSummary: BuildSummary(scans, DefaultWindowDays, time.Now().UTC()),
		CardName:     card.FullName(),
	}, nil
}

// BuildSummary produces the day-bucketed and device-bucketed summary of
// a scan collection. The day series covers every calendar day from
// (today - days + 1) through today ascending, scans outside the window
// count in the total only. Deterministic for a fixed "today".
func BuildSummary(scans []*models.Scan, days int, today time.Time) models.StatsSummary {
	summary := models.StatsSummary{
		TotalScans: len(scans),
		ScansByDay: make([]models.DayCount, days),
		ScansByDevice: map[string]int{
			device.IOS:     0,
			device.Android: 0,
			device.Desktop: 0,
			device.Unknown: 0,
		},
	}

	start := today.AddDate(0, 0, -(days - 1))
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(dayFormat)
		summary.ScansByDay[i] = models.DayCount{Date: date}
		index[date] = i
	}

	for _, scan := range scans {
		if i, ok := index[scan.ScannedAt.UTC().Format(dayFormat)]; ok {
			summary.ScansByDay[i].Count++
		}

		deviceType := scan.DeviceType
		if !device.Known(deviceType) {
			deviceType = device.Unknown
		}
		summary.ScansByDevice[deviceType]++
	}

	return summary
}
