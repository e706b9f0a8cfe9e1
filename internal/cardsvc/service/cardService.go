package service

import (
	"context"
	"fmt"

	"github.com/avvvet/card-services/internal/cardsvc/models"
	"github.com/avvvet/card-services/internal/photo"
	"github.com/gofrs/uuid"
)

// CardStore is the persistence contract the card service depends on.
type CardStore interface {
	Create(ctx context.Context, card *models.Card) error
	GetByID(ctx context.Context, id string) (*models.Card, error)
	List(ctx context.Context) ([]*models.Card, error)
	Update(ctx context.Context, card *models.Card) error
	Delete(ctx context.Context, id string) error
}

// ScanPurger removes a card's scans when the card goes away.
type ScanPurger interface {
	DeleteByCardID(ctx context.Context, cardID string) error
}

type CardService struct {
	store     CardStore
	scans     ScanPurger
	uploadDir string
}

func NewCardService(store CardStore, scans ScanPurger, uploadDir string) *CardService {
	return &CardService{store: store, scans: scans, uploadDir: uploadDir}
}

// Create assigns the card its id and persists it. A normalized photo
// asset, when given, is committed with the row as one unit: the row
// carries the photo path from the start, and a failed asset write
// rolls the row back.
func (s *CardService) Create(ctx context.Context, card *models.Card, asset *photo.Asset) error {
	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("failed to generate card id: %w", err)
	}
	card.ID = id.String()

	if asset != nil {
		card.PhotoPath = asset.Filename(card.ID)
	}

	if err := s.store.Create(ctx, card); err != nil {
		return err
	}

	if asset != nil {
		if err := photo.Save(s.uploadDir, card.PhotoPath, asset.Data); err != nil {
			s.store.Delete(ctx, card.ID) // best effort rollback
			return err
		}
	}

	return nil
}

func (s *CardService) Get(ctx context.Context, id string) (*models.Card, error) {
	return s.store.GetByID(ctx, id)
}

func (s *CardService) List(ctx context.Context) ([]*models.Card, error) {
	return s.store.List(ctx)
}

// Update persists the edited fields and, when a new photo asset is
// given, swaps the stored photo: the row update carries the new path,
// the asset is written, then the previous file is removed.
func (s *CardService) Update(ctx context.Context, card *models.Card, asset *photo.Asset) error {
	oldPhoto := card.PhotoPath
	if asset != nil {
		card.PhotoPath = asset.Filename(card.ID)
	}

	if err := s.store.Update(ctx, card); err != nil {
		return err
	}

	if asset != nil {
		if err := photo.Save(s.uploadDir, card.PhotoPath, asset.Data); err != nil {
			return err
		}

		if oldPhoto != "" && oldPhoto != card.PhotoPath {
			if err := photo.Remove(s.uploadDir, oldPhoto); err != nil {
				return err
			}
		}
	}

	return nil
}

// Delete removes the card, its photo asset and all of its scans.
func (s *CardService) Delete(ctx context.Context, card *models.Card) error {
	if err := photo.Remove(s.uploadDir, card.PhotoPath); err != nil {
		return err
	}

	if err := s.scans.DeleteByCardID(ctx, card.ID); err != nil {
		return err
	}

	return s.store.Delete(ctx, card.ID)
}
