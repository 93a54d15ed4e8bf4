package domain

import (
	"time"
	"unicode/utf8"
)

// Document is the persisted record of an analyzed upload. Rows are
// append-only and owned by exactly one tenant; nothing in the system
// updates or deletes them.
type Document struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Filename    string    `json:"filename"`
	DocType     string    `json:"doc_type"`
	TextExcerpt string    `json:"text_excerpt"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExcerptMaxChars bounds the stored text excerpt.
const ExcerptMaxChars = 5000

// Truncate returns at most max bytes of s. The cut backs off to a rune
// boundary so the excerpt stays valid UTF-8; the store rejects anything else.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
