// Package share builds hand-off links for WhatsApp and email clients.
package share

import (
	"net/url"
	"strings"
)

// WhatsAppLink returns a wa.me chat link with the message prefilled.
// The phone number may contain spaces, dashes or a leading plus.
func WhatsAppLink(phone, message string) string {
	digits := normalizePhone(phone)
	if digits == "" {
		return "https://wa.me/?text=" + url.QueryEscape(message)
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}

// MailtoLink returns a mailto URL with subject and body prefilled.
func MailtoLink(to, subject, body string) string {
	params := url.Values{}
	params.Set("subject", subject)
	params.Set("body", body)
	// mailto uses %20 for spaces, not '+'.
	query := strings.ReplaceAll(params.Encode(), "+", "%20")
	return "mailto:" + to + "?" + query
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
