// Package vcard renders a card as a vCard 3.0 (RFC 6350) text record.
package vcard

import (
	"fmt"
	"strings"

	"github.com/avvvet/card-services/internal/cardsvc/models"
)

// Generate builds the vCard text for a card. Optional fields (phone,
// website, photo URL) are omitted entirely when empty. Field values are
// interpolated as-is; reserved characters (comma, semicolon, newline)
// are not escaped.
func Generate(card *models.Card, photoURL string) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		fmt.Sprintf("FN:%s %s", card.FirstName, card.LastName),
		fmt.Sprintf("N:%s;%s;;;", card.LastName, card.FirstName),
		fmt.Sprintf("EMAIL:%s", card.Email),
		fmt.Sprintf("ORG:%s", card.Company),
		fmt.Sprintf("TITLE:%s", card.Position),
	}

	if card.Phone != "" {
		lines = append(lines, fmt.Sprintf("TEL:%s", card.Phone))
	}

	if card.Website != "" {
		lines = append(lines, fmt.Sprintf("URL:%s", card.Website))
	}

	if photoURL != "" {
		lines = append(lines, fmt.Sprintf("PHOTO;VALUE=URL:%s", photoURL))
	}

	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n")
}

// Filename returns the suggested attachment name for a card's vCard.
func Filename(card *models.Card) string {
	return fmt.Sprintf("%s_%s.vcf", card.FirstName, card.LastName)
}
