// Package normalize canonicalizes user-supplied identifiers before they
// are stored or compared.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace and preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// ID trims an opaque identifier such as a property or tenant id.
// Case is significant and is preserved.
func ID(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role name.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Currency uppercases and trims an ISO 4217 code.
func Currency(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
