// Package identity canonicalizes user identities. Every store and service in
// this module keys users by the normalized form of their email address.
package identity

import "strings"

// Normalize converts a raw email into the stable lowercase key used everywhere
// else. Empty or whitespace-only input normalizes to the empty string, which
// consuming operations reject.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsModerator reports whether the normalized email is in the configured
// moderator list.
func IsModerator(adminEmails []string, email string) bool {
	normalized := Normalize(email)
	if normalized == "" {
		return false
	}
	for _, admin := range adminEmails {
		if Normalize(admin) == normalized {
			return true
		}
	}
	return false
}
