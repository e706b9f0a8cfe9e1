package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avvvet/card-services/internal/cardsvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CardStore struct {
	db *pgxpool.Pool
}

func NewCardStore(db *pgxpool.Pool) *CardStore {
	return &CardStore{db: db}
}

func (s *CardStore) Create(ctx context.Context, card *models.Card) error {
	query := `
		INSERT INTO cards (id, first_name, last_name, email, phone, company, position, website, photo_path, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := s.db.QueryRow(ctx, query,
		card.ID,
		card.FirstName,
		card.LastName,
		card.Email,
		card.Phone,
		card.Company,
		card.Position,
		card.Website,
		card.PhotoPath,
		card.IsActive,
	).Scan(&card.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}

	return nil
}

func (s *CardStore) GetByID(ctx context.Context, id string) (*models.Card, error) {
	query := `
		SELECT c.id, c.first_name, c.last_name, c.email, c.phone, c.company, c.position,
		       c.website, c.photo_path, c.is_active, c.created_at, COUNT(s.id) AS scan_count
		FROM cards c
		LEFT JOIN scans s ON s.card_id = c.id
		WHERE c.id = $1
		GROUP BY c.id
	`

	card := &models.Card{}
	err := s.db.QueryRow(ctx, query, id).Scan(
		&card.ID,
		&card.FirstName,
		&card.LastName,
		&card.Email,
		&card.Phone,
		&card.Company,
		&card.Position,
		&card.Website,
		&card.PhotoPath,
		&card.IsActive,
		&card.CreatedAt,
		&card.ScanCount,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // card not found
		}
		return nil, fmt.Errorf("failed to get card by id: %w", err)
	}

	return card, nil
}

// List returns all cards newest first, each with its scan count.
func (s *CardStore) List(ctx context.Context) ([]*models.Card, error) {
	query := `
		SELECT c.id, c.first_name, c.last_name, c.email, c.phone, c.company, c.position,
		       c.website, c.photo_path, c.is_active, c.created_at, COUNT(s.id) AS scan_count
		FROM cards c
		LEFT JOIN scans s ON s.card_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []*models.Card
	for rows.Next() {
		card := &models.Card{}
		err := rows.Scan(
			&card.ID,
			&card.FirstName,
			&card.LastName,
			&card.Email,
			&card.Phone,
			&card.Company,
			&card.Position,
			&card.Website,
			&card.PhotoPath,
			&card.IsActive,
			&card.CreatedAt,
			&card.ScanCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate card rows: %w", err)
	}

	return cards, nil
}

func (s *CardStore) Update(ctx context.Context, card *models.Card) error {
	query := `
		UPDATE cards
		SET first_name = $2, last_name = $3, email = $4, phone = $5,
		    company = $6, position = $7, website = $8, photo_path = $9, is_active = $10
		WHERE id = $1
	`

	_, err := s.db.Exec(ctx, query,
		card.ID,
		card.FirstName,
		card.LastName,
		card.Email,
		card.Phone,
		card.Company,
		card.Position,
		card.Website,
		card.PhotoPath,
		card.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}

	return nil
}

func (s *CardStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM cards WHERE id = $1`

	_, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	return nil
}
