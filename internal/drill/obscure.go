package drill

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
	"unicode/utf8"
)

// Mask replaces every hidden character in an obscured hint.
const Mask = '*'

// Source is the randomness Obscure draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewRand returns a ChaCha8 generator seeded from crypto/rand, so hints are
// not reproducible across runs.
func NewRand() (*rand.Rand, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return rand.New(rand.NewChaCha8(seed)), nil
}

// Obscure returns secret with level distinct, uniformly chosen character
// positions replaced by Mask. Positions are counted in runes.
//
// level 0 returns secret unchanged and level == length returns all masks.
// Secrets that are not valid UTF-8 are rejected with ErrInvalidSecret.
func Obscure(src Source, secret string, level int) (string, error) {
	n := utf8.RuneCountInString(secret)
	switch {
	case !utf8.ValidString(secret):
		return "", ErrInvalidSecret
	case level < 0:
		return "", fmt.Errorf("%w: %d < 0", ErrInvalidLevel, level)
	case n == 0 && level > 0:
		return "", ErrEmptySecret
	case level > n:
		return "", fmt.Errorf("%w: %d > length %d", ErrInvalidLevel, level, n)
	case level == 0:
		return secret, nil
	}

	runes := []rune(secret)
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	// Partial Fisher-Yates: the first level entries are a uniform sample
	// without replacement.
	for i := 0; i < level; i++ {
		j := i + src.IntN(n-i)
		positions[i], positions[j] = positions[j], positions[i]
		runes[positions[i]] = Mask
	}
	return string(runes), nil
}
