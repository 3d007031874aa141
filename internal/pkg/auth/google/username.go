package google

import (
	"strings"
	"unicode"

	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/randx"
)

// Candidate usernames must satisfy the same length bounds the register
// endpoint enforces, or the pre-filled form dead-ends on submit.
const (
	minCandidateLength = 4
	maxCandidateLength = 20
)

// CandidateUsername derives a registration-form username suggestion from a
// Google display name: lowercased, spaces collapsed to underscores, anything
// outside [a-z0-9_] dropped, truncated to maxCandidateLength. A result shorter
// than minCandidateLength is padded with a random suffix; when nothing usable
// remains at all it falls back to a random generated username.
func CandidateUsername(displayName string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(strings.TrimSpace(displayName)) {
		switch {
		case unicode.IsSpace(r):
			b.WriteByte('_')
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_':
			b.WriteRune(r)
		}
		if b.Len() >= maxCandidateLength {
			break
		}
	}

	candidate := strings.Trim(b.String(), "_")
	if len(candidate) >= minCandidateLength {
		return candidate
	}

	fallback, err := randx.FallbackUsername()
	if err != nil {
		return "user"
	}
	// The suffix alphabet includes uppercase; the username rules do not.
	fallback = strings.ToLower(fallback)

	if candidate == "" {
		return fallback
	}

	padded := candidate + "_" + strings.TrimPrefix(fallback, "user_")
	if len(padded) > maxCandidateLength {
		padded = padded[:maxCandidateLength]
	}
	return padded
}
