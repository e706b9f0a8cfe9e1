package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/avvvet/card-services/internal/cardsvc/models"
	"github.com/avvvet/card-services/internal/photo"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// in-memory stores implementing the service contracts

type fakeCardStore struct {
	cards     map[string]*models.Card
	createErr error
}

func newFakeCardStore() *fakeCardStore {
	return &fakeCardStore{cards: make(map[string]*models.Card)}
}

func (f *fakeCardStore) Create(ctx context.Context, card *models.Card) error {
	if f.createErr != nil {
		return f.createErr
	}
	card.CreatedAt = time.Now().UTC()
	f.cards[card.ID] = card
	return nil
}

func (f *fakeCardStore) GetByID(ctx context.Context, id string) (*models.Card, error) {
	card, ok := f.cards[id]
	if !ok {
		return nil, nil
	}
	return card, nil
}

func (f *fakeCardStore) List(ctx context.Context) ([]*models.Card, error) {
	var cards []*models.Card
	for _, card := range f.cards {
		cards = append(cards, card)
	}
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].CreatedAt.After(cards[j].CreatedAt)
	})
	return cards, nil
}

func (f *fakeCardStore) Update(ctx context.Context, card *models.Card) error {
	f.cards[card.ID] = card
	return nil
}

func (f *fakeCardStore) Delete(ctx context.Context, id string) error {
	delete(f.cards, id)
	return nil
}

type fakeScanStore struct {
	scans  []*models.Scan
	nextID int64
}

func newFakeScanStore() *fakeScanStore {
	return &fakeScanStore{}
}

func (f *fakeScanStore) Insert(ctx context.Context, scan *models.Scan) error {
	f.nextID++
	scan.ID = f.nextID
	if scan.ScannedAt.IsZero() {
		scan.ScannedAt = time.Now().UTC()
	}
	f.scans = append(f.scans, scan)
	return nil
}

func (f *fakeScanStore) ListByCardID(ctx context.Context, cardID string) ([]*models.Scan, error) {
	var scans []*models.Scan
	for _, scan := range f.scans {
		if scan.CardID == cardID {
			scans = append(scans, scan)
		}
	}
	return scans, nil
}

func (f *fakeScanStore) ListAll(ctx context.Context) ([]*models.Scan, error) {
	return f.scans, nil
}

func (f *fakeScanStore) DeleteByCardID(ctx context.Context, cardID string) error {
	var kept []*models.Scan
	for _, scan := range f.scans {
		if scan.CardID != cardID {
			kept = append(kept, scan)
		}
	}
	f.scans = kept
	return nil
}

func TestCardServiceCreateAssignsID(t *testing.T) {
	cards := newFakeCardStore()
	svc := NewCardService(cards, newFakeScanStore(), t.TempDir())

	card := &models.Card{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		Company: "Analytical Engines Ltd", Position: "Chief Engineer", IsActive: true}

	require.NoError(t, svc.Create(context.Background(), card, nil))

	_, err := uuid.FromString(card.ID)
	assert.NoError(t, err)

	stored, err := svc.Get(context.Background(), card.ID)
	require.NoError(t, err)
	assert.Equal(t, card, stored)
}

func TestCardServiceCreateWithPhoto(t *testing.T) {
	dir := t.TempDir()
	cards := newFakeCardStore()
	svc := NewCardService(cards, newFakeScanStore(), dir)

	card := &models.Card{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		Company: "Analytical Engines Ltd", Position: "Chief Engineer"}
	asset := &photo.Asset{Ext: ".jpg", Data: []byte("img")}

	require.NoError(t, svc.Create(context.Background(), card, asset))

	// photo path committed with the row, not after it
	assert.Equal(t, card.ID+".jpg", card.PhotoPath)
	assert.Equal(t, card.ID+".jpg", cards.cards[card.ID].PhotoPath)

	data, err := os.ReadFile(filepath.Join(dir, card.PhotoPath))
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), data)
}

func TestCardServiceCreateStoreFailureWritesNoPhoto(t *testing.T) {
	dir := t.TempDir()
	cards := newFakeCardStore()
	cards.createErr = errors.New("insert failed")
	svc := NewCardService(cards, newFakeScanStore(), dir)

	card := &models.Card{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		Company: "Analytical Engines Ltd", Position: "Chief Engineer"}
	asset := &photo.Asset{Ext: ".jpg", Data: []byte("img")}

	require.Error(t, svc.Create(context.Background(), card, asset))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCardServiceDeleteCascades(t *testing.T) {
	dir := t.TempDir()
	cards := newFakeCardStore()
	scans := newFakeScanStore()
	svc := NewCardService(cards, scans, dir)

	card := &models.Card{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		Company: "Analytical Engines Ltd", Position: "Chief Engineer"}
	require.NoError(t, svc.Create(context.Background(), card, &photo.Asset{Ext: ".jpg", Data: []byte("img")}))

	other := &models.Card{FirstName: "Alan", LastName: "Turing", Email: "alan@example.com",
		Company: "NPL", Position: "Researcher"}
	require.NoError(t, svc.Create(context.Background(), other, nil))

	for i := 0; i < 3; i++ {
		require.NoError(t, scans.Insert(context.Background(), &models.Scan{CardID: card.ID}))
	}
	require.NoError(t, scans.Insert(context.Background(), &models.Scan{CardID: other.ID}))

	photoFile := filepath.Join(dir, card.PhotoPath)

	require.NoError(t, svc.Delete(context.Background(), card))

	// card gone
	got, err := svc.Get(context.Background(), card.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// its scans gone, the other card's remain
	remaining, err := scans.ListByCardID(context.Background(), card.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	otherScans, err := scans.ListByCardID(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Len(t, otherScans, 1)

	// photo asset removed
	_, err = os.Stat(photoFile)
	assert.True(t, os.IsNotExist(err))
}

func TestCardServiceUpdateReplacesPhoto(t *testing.T) {
	dir := t.TempDir()
	cards := newFakeCardStore()
	svc := NewCardService(cards, newFakeScanStore(), dir)

	card := &models.Card{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		Company: "Analytical Engines Ltd", Position: "Chief Engineer"}
	require.NoError(t, svc.Create(context.Background(), card, &photo.Asset{Ext: ".png", Data: []byte("old")}))

	oldFile := filepath.Join(dir, card.ID+".png")

	require.NoError(t, svc.Update(context.Background(), card, &photo.Asset{Ext: ".jpg", Data: []byte("new")}))

	_, err := os.Stat(oldFile)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, card.ID+".jpg", card.PhotoPath)
	assert.Equal(t, card.ID+".jpg", cards.cards[card.ID].PhotoPath)

	data, err := os.ReadFile(filepath.Join(dir, card.ID+".jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

func TestCardServiceUpdateKeepsPhotoWithoutAsset(t *testing.T) {
	dir := t.TempDir()
	cards := newFakeCardStore()
	svc := NewCardService(cards, newFakeScanStore(), dir)

	card := &models.Card{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		Company: "Analytical Engines Ltd", Position: "Chief Engineer"}
	require.NoError(t, svc.Create(context.Background(), card, &photo.Asset{Ext: ".jpg", Data: []byte("img")}))

	card.Position = "Director"
	require.NoError(t, svc.Update(context.Background(), card, nil))

	assert.Equal(t, card.ID+".jpg", cards.cards[card.ID].PhotoPath)
	assert.Equal(t, "Director", cards.cards[card.ID].Position)

	_, err := os.Stat(filepath.Join(dir, card.ID+".jpg"))
	assert.NoError(t, err)
}
