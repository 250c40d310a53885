package whatsapp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sipslabs/sips-api/internal/whatsapp"
)

func TestConfirmationLink(t *testing.T) {
	start := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)

	link := whatsapp.ConfirmationLink("55", "(11) 98888-7777", "Corte", start)

	assert.Contains(t, link, "https://wa.me/5511988887777?text=")
	assert.Contains(t, link, "Corte")
	assert.Contains(t, link, "10%2F01%2F2024")
	assert.Contains(t, link, "10%3A00")
	assert.NotContains(t, link, " ")
}

func TestConfirmationLinkStripsPhoneMask(t *testing.T) {
	start := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	link := whatsapp.ConfirmationLink("55", "+55 (11) 91234-5678", "Barba", start)

	assert.Contains(t, link, "wa.me/555511912345678")
}
