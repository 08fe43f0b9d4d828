// Package rng provides the seeded random stream that drives dungeon
// generation. The same seed always yields the same sequence of draws.
package rng

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// SeedLength is the number of seed bytes consumed by the stream.
const SeedLength = 32

// ErrShortSeed is returned when a seed string has fewer than SeedLength bytes.
var ErrShortSeed = errors.New("seed must be at least 32 characters")

// Source produces uniform integers. Generators take a Source so tests can
// substitute a scripted one.
type Source interface {
	// Range returns a uniform integer in [lo, hi). It panics if hi <= lo.
	Range(lo, hi int) int
}

// Stream is a deterministic Source backed by ChaCha8.
type Stream struct {
	r     *rand.Rand
	draws int
}

// New creates a stream from a raw 32-byte seed.
func New(seed [SeedLength]byte) *Stream {
	return &Stream{r: rand.New(rand.NewChaCha8(seed))}
}

// FromSeed creates a stream from the first 32 bytes of a seed string.
func FromSeed(seed string) (*Stream, error) {
	if len(seed) < SeedLength {
		return nil, fmt.Errorf("%w: got %d", ErrShortSeed, len(seed))
	}
	var raw [SeedLength]byte
	copy(raw[:], seed)
	return New(raw), nil
}

// Range returns a uniform integer in [lo, hi).
func (s *Stream) Range(lo, hi int) int {
	if hi <= lo {
		panic(fmt.Sprintf("rng: empty range [%d, %d)", lo, hi))
	}
	s.draws++
	return lo + s.r.IntN(hi-lo)
}

// Draws returns how many values have been taken from the stream.
func (s *Stream) Draws() int {
	return s.draws
}

// HashText returns the lowercase hex SHA-256 digest of text. The digest is
// long enough to be used directly as a seed.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// NewSeed returns a fresh random seed.
func NewSeed() string {
	return HashText(uuid.NewString())
}

// ResolveSeed picks the seed for a run: an explicit seed wins, then the
// hash of text, then a fresh random seed.
func ResolveSeed(seed, text string) (string, error) {
	switch {
	case seed != "":
		if len(seed) < SeedLength {
			return "", fmt.Errorf("%w: got %d", ErrShortSeed, len(seed))
		}
		return seed, nil
	case text != "":
		return HashText(text), nil
	default:
		return NewSeed(), nil
	}
}
