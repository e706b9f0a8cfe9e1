package service

import (
	"context"
	"encoding/json"

	"github.com/avvvet/card-services/internal/cardsvc/models"
	"github.com/avvvet/card-services/internal/comm"
	"github.com/avvvet/card-services/internal/device"
	log "github.com/sirupsen/logrus"
)

// ScanStore is the persistence contract for scan events.
type ScanStore interface {
	Insert(ctx context.Context, scan *models.Scan) error
	ListByCardID(ctx context.Context, cardID string) ([]*models.Scan, error)
	ListAll(ctx context.Context) ([]*models.Scan, error)
	DeleteByCardID(ctx context.Context, cardID string) error
}

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	Publish(subject string, data []byte) error
}

type ScanService struct {
	store ScanStore
	pub   Publisher
}

func NewScanService(store ScanStore, pub Publisher) *ScanService {
	return &ScanService{store: store, pub: pub}
}

// Record classifies the User-Agent, stores the scan and publishes a
// scan event for live consumers. Publishing is best effort, the scan
// is persisted either way.
func (s *ScanService) Record(ctx context.Context, cardID, userAgent string) (*models.Scan, error) {
	scan := &models.Scan{
		CardID:     cardID,
		UserAgent:  userAgent,
		DeviceType: device.Classify(userAgent),
	}

	if err := s.store.Insert(ctx, scan); err != nil {
		return nil, err
	}

	s.publishEvent(scan)

	return scan, nil
}

func (s *ScanService) ListByCardID(ctx context.Context, cardID string) ([]*models.Scan, error) {
	return s.store.ListByCardID(ctx, cardID)
}

func (s *ScanService) publishEvent(scan *models.Scan) {
	if s.pub == nil {
		return
	}

	event := comm.ScanEvent{
		ScanID:     scan.ID,
		CardID:     scan.CardID,
		DeviceType: scan.DeviceType,
		ScannedAt:  scan.ScannedAt,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorf("Failed to marshal scan event: %v", err)
		return
	}

	if err := s.pub.Publish(comm.TopicScanRecorded, data); err != nil {
		log.Errorf("Failed to publish scan event for card %s: %v", scan.CardID, err)
	}
}
