// Package shortcode derives short codes from original URLs.
//
// A code is the first Length hexadecimal characters of the SHA-256 digest of
// the original URL followed by the decimal attempt number. Generation is
// deterministic for a given (url, attempt) pair and holds no state, so it is
// safe for concurrent use.
package shortcode

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/vadimbarashkov/url-shortener/internal/entity"
)

const (
	// Length is the number of hexadecimal characters in a short code.
	Length = 8
	// MaxAttempts is the number of candidates tried before giving up.
	MaxAttempts = 10
)

// Candidate returns the short code candidate for the given URL and attempt.
func Candidate(originalURL string, attempt int) string {
	digest := sha256.Sum256([]byte(originalURL + strconv.Itoa(attempt)))
	return hex.EncodeToString(digest[:Length/2])
}

// Generate returns the first candidate for originalURL that exists reports as
// free. It computes at most MaxAttempts digests and fails with
// entity.ErrGenerationExhausted when all of them collide.
//
// exists is called once per candidate. Callers that need the check and the
// insert to be atomic should perform the insert inside exists and report a
// collision when it did not happen.
func Generate(originalURL string, exists func(shortCode string) bool) (string, error) {
	const op = "shortcode.Generate"

	for attempt := range MaxAttempts {
		candidate := Candidate(originalURL, attempt)
		if !exists(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%s: %d attempts: %w", op, MaxAttempts, entity.ErrGenerationExhausted)
}

// IsValid reports whether s has the shape of a generated short code.
func IsValid(s string) bool {
	if len(s) != Length {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}

	return true
}
