// Package validate holds the pure format predicates shared by every
// feature: deterministic, stateless, no dependency on session state.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Permissive international phone: optional country code, optional
	// separators, 3-4 digit groups.
	phoneRx = regexp.MustCompile(`^\+?\d{1,4}?[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}$`)

	// Strict UUID v4 shape, case-insensitive.
	eventUUIDRx = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

	calendlyRx = regexp.MustCompile(`^https://calendly\.com/[a-zA-Z0-9._-]+/[a-zA-Z0-9._-]+$`)

	// RE2 has no lookahead, so the password policy is decomposed into one
	// regexp per character class plus a length check.
	passwordUpperRx  = regexp.MustCompile(`[A-Z]`)
	passwordLowerRx  = regexp.MustCompile(`[a-z]`)
	passwordDigitRx  = regexp.MustCompile(`[0-9]`)
	passwordSymbolRx = regexp.MustCompile(`[#?!@$ %^&*-]`)

	nonDigitRx = regexp.MustCompile(`\D`)
)

func IsEmail(email string) bool {
	return emailRx.MatchString(email)
}

func IsPhone(phone string) bool {
	return phoneRx.MatchString(phone)
}

// IsPassword enforces the signup password policy: at least 8 characters
// with an uppercase letter, a lowercase letter, a digit and a symbol.
func IsPassword(password string) bool {
	return len(password) >= 8 &&
		passwordUpperRx.MatchString(password) &&
		passwordLowerRx.MatchString(password) &&
		passwordDigitRx.MatchString(password) &&
		passwordSymbolRx.MatchString(password)
}

// IsEventUUID reports whether s has the exact UUID v4 shape the scheduling
// service emits for event identifiers.
func IsEventUUID(s string) bool {
	return eventUUIDRx.MatchString(s)
}

// IsCalendlyLink reports whether link is a user/event-type Calendly URL.
func IsCalendlyLink(link string) bool {
	return calendlyRx.MatchString(strings.TrimSpace(link))
}

// DigitsOnly strips every non-digit; the backend stores phone numbers as
// bare digit strings.
func DigitsOnly(s string) string {
	return nonDigitRx.ReplaceAllString(s, "")
}
