package captcha

import (
	cryptorand "crypto/rand"
	"math/rand/v2"
	"strings"
)

// DefaultCharacters 默认字符集，排除容易混淆的字符：0, O, I, L, 1
const DefaultCharacters = "23456789ABCDEFGHJKMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz"

const (
	MinLength = 1
	MaxLength = 16
)

// CharacterSet is the ordered alphabet random solutions are drawn from.
type CharacterSet []rune

// DefaultCharacterSet returns a fresh copy of the default alphabet.
func DefaultCharacterSet() CharacterSet {
	return CharacterSet(DefaultCharacters)
}

// String joins the set back into a string.
func (s CharacterSet) String() string {
	return string(s)
}

// Contains reports whether r is a member of the set.
func (s CharacterSet) Contains(r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// Generate returns exactly length symbols drawn uniformly, with replacement,
// from set. length is clamped to [MinLength, MaxLength]; an empty set falls
// back to the default alphabet.
func Generate(rng *rand.Rand, set CharacterSet, length int) string {
	if len(set) == 0 {
		set = DefaultCharacterSet()
	}
	length = clamp(length, MinLength, MaxLength)

	var code strings.Builder
	code.Grow(length)
	for i := 0; i < length; i++ {
		code.WriteRune(set[rng.IntN(len(set))])
	}
	return code.String()
}

// newRand returns an independent ChaCha8 source seeded from crypto/rand.
// Every generation call and every noise or distortion pass gets its own.
func newRand() *rand.Rand {
	var seed [32]byte
	_, _ = cryptorand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// rndInclusive returns a uniform integer in [0, n].
func rndInclusive(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.IntN(n + 1)
}

// rndBetween returns a uniform float in [min, max], or min when the range is empty.
func rndBetween(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
