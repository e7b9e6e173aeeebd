package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple address", "ahmed@example.com", true},
		{"subdomain", "a.b@mail.example.org", true},
		{"missing tld", "a@b", false},
		{"missing at", "ahmed.example.com", false},
		{"spaces", "ah med@example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmail(tt.email))
		})
	}
}

func TestIsPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"egyptian mobile", "+201234567890", true},
		{"plain digits", "01234567890", true},
		{"dashed", "012-3456-7890", true},
		{"too short", "123", false},
		{"letters", "phone-number", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPhone(tt.phone))
		})
	}
}

func TestIsPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"all classes", "Str0ng@Pass", true},
		{"too short", "S1@a", false},
		{"no uppercase", "weak1@pass", false},
		{"no digit", "Weak@Pass", false},
		{"no symbol", "Weak1Pass", false},
		{"no lowercase", "WEAK1@PASS", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPassword(tt.password))
		})
	}
}

func TestIsEventUUID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"canonical v4", "3fa85f64-5717-4562-b3fc-2c963f66afa6", true},
		{"uppercase v4", "3FA85F64-5717-4562-B3FC-2C963F66AFA6", true},
		{"not a uuid", "abcd", false},
		{"wrong version nibble", "3fa85f64-5717-1562-b3fc-2c963f66afa6", false},
		{"wrong variant nibble", "3fa85f64-5717-4562-03fc-2c963f66afa6", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEventUUID(tt.in))
		})
	}
}

func TestIsCalendlyLink(t *testing.T) {
	tests := []struct {
		name string
		link string
		want bool
	}{
		{"user event link", "https://calendly.com/sheikh-ali/quran-session", true},
		{"surrounding spaces", "  https://calendly.com/sheikh-ali/quran-session  ", true},
		{"missing event type", "https://calendly.com/sheikh-ali", false},
		{"wrong host", "https://example.com/sheikh-ali/quran-session", false},
		{"plain http", "http://calendly.com/sheikh-ali/quran-session", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCalendlyLink(tt.link))
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "201234567890", DigitsOnly("+20 123-456-7890"))
	assert.Equal(t, "", DigitsOnly("no digits here"))
	assert.Equal(t, "12345", DigitsOnly("12345"))
}
