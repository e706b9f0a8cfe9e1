package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	cardsSchema = `CREATE TABLE IF NOT EXISTS cards (
			id VARCHAR(36) PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(50) NOT NULL DEFAULT '',
			company VARCHAR(255) NOT NULL,
			position VARCHAR(255) NOT NULL,
			website VARCHAR(500) NOT NULL DEFAULT '',
			photo_path VARCHAR(500) NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW());

		CREATE INDEX IF NOT EXISTS idx_cards_created_at ON cards(created_at);`

	scansSchema = `CREATE TABLE IF NOT EXISTS scans (
			id SERIAL PRIMARY KEY,
			card_id VARCHAR(36) NOT NULL REFERENCES cards(id) ON DELETE CASCADE,
			scanned_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			user_agent VARCHAR(500) NOT NULL DEFAULT '',
			device_type VARCHAR(50) NOT NULL DEFAULT 'Unknown');

		CREATE INDEX IF NOT EXISTS idx_scans_card_id_scanned_at ON scans(card_id, scanned_at);`
)

// Migrate creates the cards and scans tables if they do not exist yet.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, cardsSchema); err != nil {
		return fmt.Errorf("failed to create cards table: %w", err)
	}

	if _, err := db.Exec(ctx, scansSchema); err != nil {
		return fmt.Errorf("failed to create scans table: %w", err)
	}

	return nil
}
