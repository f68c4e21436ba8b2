// Package share generates and validates public share tokens.
package share

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"regexp"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
)

const (
	// TokenBytes is the amount of randomness in a token.
	TokenBytes = 32
	// MaxAttempts bounds token generation when the store reports a collision.
	MaxAttempts = 5

	minTokenLength = 16
	maxTokenLength = 128
)

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Generator produces share tokens from a random source.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading from r, or from crypto/rand
// when r is nil.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// NewToken returns TokenBytes random bytes in unpadded URL-safe base64.
func (g *Generator) NewToken() (string, error) {
	b := make([]byte, TokenBytes)
	if _, err := io.ReadFull(g.rand, b); err != nil {
		return "", fmt.Errorf("reading random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ValidateToken rejects tokens outside the URL-safe charset or length
// bounds before any lookup is attempted.
func ValidateToken(token string) error {
	if len(token) < minTokenLength || len(token) > maxTokenLength || !tokenPattern.MatchString(token) {
		return apperr.Invalid("share token is malformed")
	}
	return nil
}
