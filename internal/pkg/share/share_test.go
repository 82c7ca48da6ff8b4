package share

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+20 100-234-5678", "Shift starts at 06:00")
	assert.Equal(t, "https://wa.me/201002345678?text=Shift+starts+at+06%3A00", link)
}

func TestWhatsAppLinkNoPhone(t *testing.T) {
	link := WhatsAppLink("", "hello")
	assert.Equal(t, "https://wa.me/?text=hello", link)
}

func TestMailtoLink(t *testing.T) {
	link := MailtoLink("leader@plant.example", "Shift Reminder", "You are on Morning shift")
	assert.Equal(t, "mailto:leader@plant.example?body=You%20are%20on%20Morning%20shift&subject=Shift%20Reminder", link)
}
