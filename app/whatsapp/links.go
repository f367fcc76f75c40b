// Package whatsapp builds WhatsApp Web links and the message texts that go
// into them. Everything here is pure string work: no network, no database.
package whatsapp

import (
	"errors"
	"strings"
)

// ErrNoLink is returned when a link cannot be built because the phone number
// or invite code normalizes to nothing usable.
var ErrNoLink = errors.New("whatsapp: no link could be generated")

// FormatPhone normalizes a phone number for a wa.me URL: strips a
// "whatsapp:" prefix, a leading "+", and every non-digit character.
// Returns "" when nothing usable remains.
func FormatPhone(phone string) string {
	phone = strings.TrimPrefix(phone, "whatsapp:")
	phone = strings.TrimPrefix(phone, "+")

	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link builds an individual WhatsApp Web URL with a pre-filled message:
// https://wa.me/<digits>?text=<encoded message>.
func Link(phone, message string) (string, error) {
	formatted := FormatPhone(phone)
	if formatted == "" {
		return "", ErrNoLink
	}
	return "https://wa.me/" + formatted + "?text=" + encodeURIComponent(message), nil
}

// GroupLink builds a group broadcast URL from an invite code. A full
// chat.whatsapp.com URL may be passed instead of a bare code; the code is
// extracted from it.
func GroupLink(inviteCode, message string) (string, error) {
	if inviteCode == "" {
		return "", ErrNoLink
	}
	if idx := strings.Index(inviteCode, "chat.whatsapp.com/"); idx >= 0 {
		inviteCode = inviteCode[idx+len("chat.whatsapp.com/"):]
		if q := strings.IndexByte(inviteCode, '?'); q >= 0 {
			inviteCode = inviteCode[:q]
		}
	}
	if inviteCode == "" {
		return "", ErrNoLink
	}
	return "https://chat.whatsapp.com/" + inviteCode + "?text=" + encodeURIComponent(message), nil
}

const upperhex = "0123456789ABCDEF"

// encodeURIComponent percent-encodes a message the way browsers do, so the
// generated links match what WhatsApp Web expects. Unlike
// url.QueryEscape it encodes spaces as %20 and leaves !'()*~ alone.
func encodeURIComponent(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func shouldEscape(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}
