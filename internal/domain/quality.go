package domain

import (
	"cmp"
	"fmt"
)

// Quality is the value of an ordinary item, constrained to 0..50 inclusive.
// The zero value is MinQuality. Values are comparable with ==.
type Quality struct {
	value uint8
}

var (
	// MinQuality is the smallest possible quality (0 units)
	MinQuality = Quality{value: MinQualityValue}
	// MaxQuality is the largest possible quality (50 units)
	MaxQuality = Quality{value: MaxQualityValue}
)

// NewQuality builds a Quality from a raw integer.
// Overlarge inputs are capped at MaxQuality and negative inputs are lifted to MinQuality.
func NewQuality(raw int) Quality {
	switch {
	case raw < MinQualityValue:
		raw = MinQualityValue
	case raw > MaxQualityValue:
		raw = MaxQualityValue
	}
	return Quality{value: uint8(raw)}
}

// Int returns the underlying integer value
func (q Quality) Int() int {
	return int(q.value)
}

// Add returns q + other, saturating at MaxQuality
func (q Quality) Add(other Quality) Quality {
	return NewQuality(int(q.value) + int(other.value))
}

// Sub returns q - other, saturating at MinQuality
func (q Quality) Sub(other Quality) Quality {
	return NewQuality(int(q.value) - int(other.value))
}

// AddN clamps n into a Quality and adds it, so negative n leaves q unchanged.
func (q Quality) AddN(n int) Quality {
	return q.Add(NewQuality(n))
}

// SubN clamps n into a Quality and subtracts it, so negative n leaves q unchanged.
func (q Quality) SubN(n int) Quality {
	return q.Sub(NewQuality(n))
}

// Compare orders qualities by their underlying value
func (q Quality) Compare(other Quality) int {
	return cmp.Compare(q.value, other.value)
}

// Less reports whether q is strictly below other
func (q Quality) Less(other Quality) bool {
	return q.value < other.value
}

// String renders the quality with two digits
func (q Quality) String() string {
	return fmt.Sprintf("%02d", q.value)
}

// MagicQuality is the value of a legendary item. It is always 80 and has no arithmetic.
type MagicQuality struct{}

// Int returns the fixed legendary value
func (MagicQuality) Int() int {
	return MagicQualityValue
}

func (MagicQuality) String() string {
	return fmt.Sprintf("%d", MagicQualityValue)
}
