package decisions

import (
	"strings"

	"golang.org/x/net/publicsuffix"

	"ats/internal/domain"
)

const (
	FieldEmail = "email"
	FieldPhone = "phone"
)

// MissingContactFields lists the contact fields a candidate still needs
// before they can be contacted. An email whose domain has no registrable
// suffix counts as missing.
func MissingContactFields(c domain.ContactInfo) []string {
	var missing []string
	if !usableEmail(c.Email) {
		missing = append(missing, FieldEmail)
	}
	if strings.TrimSpace(c.Phone) == "" {
		missing = append(missing, FieldPhone)
	}
	return missing
}

// IsContactComplete reports whether both email and phone are usable.
func IsContactComplete(c domain.ContactInfo) bool {
	return len(MissingContactFields(c)) == 0
}

func usableEmail(raw string) bool {
	email := strings.TrimSpace(raw)
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	host := strings.TrimSuffix(strings.ToLower(email[at+1:]), ".")
	if _, err := publicsuffix.EffectiveTLDPlusOne(host); err != nil {
		return false
	}
	return true
}
