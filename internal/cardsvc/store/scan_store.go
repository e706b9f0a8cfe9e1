package store

import (
	"context"
	"fmt"

	"github.com/avvvet/card-services/internal/cardsvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScanStore struct {
	db *pgxpool.Pool
}

func NewScanStore(db *pgxpool.Pool) *ScanStore {
	return &ScanStore{db: db}
}

func (s *ScanStore) Insert(ctx context.Context, scan *models.Scan) error {
	query := `
		INSERT INTO scans (card_id, user_agent, device_type)
		VALUES ($1, $2, $3)
		RETURNING id, scanned_at
	`

	err := s.db.QueryRow(ctx, query, scan.CardID, scan.UserAgent, scan.DeviceType).Scan(
		&scan.ID,
		&scan.ScannedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scan: %w", err)
	}

	return nil
}

func (s *ScanStore) ListByCardID(ctx context.Context, cardID string) ([]*models.Scan, error) {
	query := `
		SELECT id, card_id, scanned_at, user_agent, device_type
		FROM scans
		WHERE card_id = $1
		ORDER BY scanned_at
	`

	rows, err := s.db.Query(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans by card: %w", err)
	}
	defer rows.Close()

	return collectScans(rows)
}

func (s *ScanStore) ListAll(ctx context.Context) ([]*models.Scan, error) {
	query := `
		SELECT id, card_id, scanned_at, user_agent, device_type
		FROM scans
		ORDER BY scanned_at
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	return collectScans(rows)
}

// DeleteByCardID removes a card's scans. The schema FK also cascades,
// this keeps the delete explicit at the application level.
func (s *ScanStore) DeleteByCardID(ctx context.Context, cardID string) error {
	query := `DELETE FROM scans WHERE card_id = $1`

	_, err := s.db.Exec(ctx, query, cardID)
	if err != nil {
		return fmt.Errorf("failed to delete scans by card: %w", err)
	}

	return nil
}

func collectScans(rows pgx.Rows) ([]*models.Scan, error) {
	var scans []*models.Scan
	for rows.Next() {
		scan := &models.Scan{}
		err := rows.Scan(
			&scan.ID,
			&scan.CardID,
			&scan.ScannedAt,
			&scan.UserAgent,
			&scan.DeviceType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scans = append(scans, scan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scan rows: %w", err)
	}

	return scans, nil
}
