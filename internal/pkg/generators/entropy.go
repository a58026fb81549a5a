package generators

import "math"

// WeakEntropyBits is the strength of the "correct horse battery staple" example (4 words from 2^11)
const WeakEntropyBits = 44.0

// BitsPerSymbol returns the entropy of one uniform pick from a set of setSize elements
func BitsPerSymbol(setSize int) float64 {
	if setSize < 1 {
		return 0
	}
	return math.Log2(float64(setSize))
}

// Entropy returns the entropy in bits of `count` uniform picks from a set of setSize elements.
// When unique is set, picks are without replacement.
func Entropy(setSize int, count int, unique bool) float64 {
	if !unique {
		return float64(count) * BitsPerSymbol(setSize)
	}

	bits := 0.0
	for i := 0; i < count && setSize-i > 0; i++ {
		bits += BitsPerSymbol(setSize - i)
	}
	return bits
}
