/*
Package randx provides functions for generating cryptographically secure random values.

It is primarily used to generate OAuth state nonces and fallback usernames for
Google sign-ups without a usable display name.
*/
package randx

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

const (
	// Base62Chars defines the character set used for Base62 encoding (0-9, A-Z, a-z).
	Base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base62Len is the total number of characters in the Base62 character set (62).
	Base62Len = int64(len(Base62Chars))

	// StateNonceBytes is the number of random bytes in an OAuth state nonce before encoding.
	StateNonceBytes = 32

	// UsernameSuffixLength is the number of Base62 characters appended to
	// generated usernames to avoid collisions.
	UsernameSuffixLength = 6
)

// StateNonce generates an unguessable value for the OAuth state parameter using
// crypto/rand. The result is URL-safe base64 without padding.
func StateNonce() (string, error) {
	b := make([]byte, StateNonceBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes for state nonce: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// base62String returns a random Base62 string of the given length.
func base62String(length int) (string, error) {
	result := make([]byte, length)

	for i := range length {
		num, err := rand.Int(rand.Reader, big.NewInt(Base62Len))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = Base62Chars[num.Int64()]
	}

	return string(result), nil
}

// FallbackUsername generates a random username with a "user_" prefix and
// UsernameSuffixLength random Base62 characters. It is used when a Google
// profile yields no usable display name.
func FallbackUsername() (string, error) {
	suffix, err := base62String(UsernameSuffixLength)
	if err != nil {
		return "", err
	}

	return "user_" + suffix, nil
}
