package vcard

import (
	"strings"
	"testing"

	"github.com/avvvet/card-services/internal/cardsvc/models"
	"github.com/stretchr/testify/assert"
)

func fullCard() *models.Card {
	return &models.Card{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+44 20 1234 5678",
		Company:   "Analytical Engines Ltd",
		Position:  "Chief Engineer",
		Website:   "https://ada.example.com",
	}
}

func TestGenerateAllFields(t *testing.T) {
	got := Generate(fullCard(), "https://cards.example.com/v1/photos/abc.jpg")

	want := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Ada Lovelace",
		"N:Lovelace;Ada;;;",
		"EMAIL:ada@example.com",
		"ORG:Analytical Engines Ltd",
		"TITLE:Chief Engineer",
		"TEL:+44 20 1234 5678",
		"URL:https://ada.example.com",
		"PHOTO;VALUE=URL:https://cards.example.com/v1/photos/abc.jpg",
		"END:VCARD",
	}, "\n")

	assert.Equal(t, want, got)
}

func TestGenerateOmitsEmptyOptionalFields(t *testing.T) {
	card := fullCard()
	card.Phone = ""
	card.Website = ""

	got := Generate(card, "")

	assert.NotContains(t, got, "TEL:")
	assert.NotContains(t, got, "URL:")
	assert.NotContains(t, got, "PHOTO")

	// required lines keep their order
	lines := strings.Split(got, "\n")
	assert.Equal(t, []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Ada Lovelace",
		"N:Lovelace;Ada;;;",
		"EMAIL:ada@example.com",
		"ORG:Analytical Engines Ltd",
		"TITLE:Chief Engineer",
		"END:VCARD",
	}, lines)
}

func TestGenerateDeterministic(t *testing.T) {
	card := fullCard()
	first := Generate(card, "https://cards.example.com/v1/photos/abc.jpg")
	second := Generate(card, "https://cards.example.com/v1/photos/abc.jpg")

	assert.Equal(t, first, second)
}

func TestGenerateNoTrailingNewline(t *testing.T) {
	got := Generate(fullCard(), "")

	assert.True(t, strings.HasSuffix(got, "END:VCARD"))
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Ada_Lovelace.vcf", Filename(fullCard()))
}
