// Package qformat quantizes real values into signed Qm.n fixed-point words.
//
// A format with m integer bits and n fractional bits occupies 1+m+n bits of
// a 32-bit word: bit 31 is the sign, the integer bits follow, then the
// fractional bits, and the remaining low-order bits are zero padding. Values
// are rounded half to even and saturate at the representable extremes
// instead of wrapping.
package qformat

import (
	"fmt"
	"math"
)

// WordBits is the fixed width of an encoded word.
const WordBits = 32

// Format describes a signed Qm.n bit split: one sign bit plus IntBits
// integer bits plus FracBits fractional bits, left-justified in a word.
type Format struct {
	IntBits  int
	FracBits int
}

// TotalBits returns the number of significant bits in an encoded word,
// including the sign bit.
func (f Format) TotalBits() int {
	return 1 + f.IntBits + f.FracBits
}

// ConfigError reports a Qm.n bit split that no 32-bit word can hold.
type ConfigError struct {
	IntBits  int
	FracBits int
}

func (e *ConfigError) Error() string {
	if e.IntBits < 0 || e.FracBits < 0 {
		return fmt.Sprintf("qformat: m (%d) and n (%d) must be non-negative", e.IntBits, e.FracBits)
	}
	return fmt.Sprintf("qformat: 1 (sign) + m (%d) + n (%d) = %d bits exceeds %d",
		e.IntBits, e.FracBits, 1+e.IntBits+e.FracBits, WordBits)
}

// Encode quantizes values into left-justified Qm.n words, one per input
// value, in input order. Each value is scaled by 2^n, rounded half to even,
// clamped to [-2^(m+n), 2^(m+n)-1], and packed as a 1+m+n bit
// two's-complement field at the top of the word. The format is validated
// before any value is touched.
func (f Format) Encode(values []float64) ([]uint32, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	shift := uint(WordBits - f.TotalBits())
	mask := uint64(1)<<uint(f.TotalBits()) - 1
	maxPos := int64(1)<<uint(f.IntBits+f.FracBits) - 1
	minNeg := -(int64(1) << uint(f.IntBits+f.FracBits))
	scale := math.Ldexp(1, f.FracBits)

	words := make([]uint32, len(values))
	for i, v := range values {
		scaled := int64(math.RoundToEven(v * scale))
		if scaled > maxPos {
			scaled = maxPos
		}
		if scaled < minNeg {
			scaled = minNeg
		}
		words[i] = uint32((uint64(scaled) & mask) << shift)
	}
	return words, nil
}

// Decode maps an encoded word back to the value it represents: arithmetic
// right shift to undo the left justification, then division by 2^n. A word
// produced by Encode without clamping decodes to within 2^-(n+1) of the
// value that was encoded.
func (f Format) Decode(word uint32) float64 {
	shift := uint(WordBits - f.TotalBits())
	return math.Ldexp(float64(int32(word)>>shift), -f.FracBits)
}

func (f Format) validate() error {
	if f.IntBits < 0 || f.FracBits < 0 || f.TotalBits() > WordBits {
		return &ConfigError{IntBits: f.IntBits, FracBits: f.FracBits}
	}
	return nil
}
