package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// allQualities enumerates every representable quality
func allQualities() []Quality {
	qs := make([]Quality, 0, MaxQualityValue+1)
	for v := MinQualityValue; v <= MaxQualityValue; v++ {
		qs = append(qs, NewQuality(v))
	}
	return qs
}

func TestNewQuality(t *testing.T) {
	t.Run("values in range are kept", func(t *testing.T) {
		for raw := MinQualityValue; raw <= MaxQualityValue; raw++ {
			assert.Equal(t, raw, NewQuality(raw).Int())
		}
	})

	t.Run("negative values truncate to min", func(t *testing.T) {
		for _, raw := range []int{-1, -2, -49, -51, -1000, math.MinInt} {
			assert.Equal(t, MinQuality, NewQuality(raw), "raw=%d", raw)
		}
	})

	t.Run("large values truncate to max", func(t *testing.T) {
		for _, raw := range []int{51, 80, 255, 256, 1000, math.MaxInt} {
			assert.Equal(t, MaxQuality, NewQuality(raw), "raw=%d", raw)
		}
	})

	t.Run("zero value is min", func(t *testing.T) {
		var q Quality
		assert.Equal(t, MinQuality, q)
		assert.Equal(t, 0, q.Int())
	})
}

func TestQuality_Add(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"small sum", 10, 5, 15},
		{"exactly max", 25, 25, 50},
		{"saturates", 45, 10, 50},
		{"max plus max", 50, 50, 50},
		{"zero identity", 17, 0, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewQuality(tt.a).Add(NewQuality(tt.b))
			assert.Equal(t, tt.expected, got.Int())
		})
	}
}

func TestQuality_Sub(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"small difference", 10, 5, 5},
		{"exactly zero", 25, 25, 0},
		{"saturates", 3, 10, 0},
		{"zero minus max", 0, 50, 0},
		{"zero identity", 17, 0, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewQuality(tt.a).Sub(NewQuality(tt.b))
			assert.Equal(t, tt.expected, got.Int())
		})
	}
}

func TestQuality_AddNSubN(t *testing.T) {
	q := NewQuality(20)

	assert.Equal(t, 22, q.AddN(2).Int())
	assert.Equal(t, 18, q.SubN(2).Int())
	assert.Equal(t, MaxQuality, q.AddN(1000))
	assert.Equal(t, MinQuality, q.SubN(1000))

	// negative amounts clamp to zero before the operation
	assert.Equal(t, q, q.AddN(-5))
	assert.Equal(t, q, q.SubN(-5))
}

func TestQuality_Properties(t *testing.T) {
	qs := allQualities()

	t.Run("addition never shrinks unless saturated", func(t *testing.T) {
		for _, a := range qs {
			for _, b := range qs {
				sum := a.Add(b)
				assert.True(t, sum.Compare(a) >= 0 || sum == MaxQuality, "%s + %s = %s", a, b, sum)
				assert.LessOrEqual(t, sum.Int(), MaxQualityValue)
			}
		}
	})

	t.Run("subtraction never grows unless saturated", func(t *testing.T) {
		for _, a := range qs {
			for _, b := range qs {
				diff := a.Sub(b)
				assert.True(t, diff.Compare(a) <= 0 || diff == MinQuality, "%s - %s = %s", a, b, diff)
				assert.GreaterOrEqual(t, diff.Int(), MinQualityValue)
			}
		}
	})

	t.Run("identities hold", func(t *testing.T) {
		for _, q := range qs {
			assert.Equal(t, q, q.Add(MinQuality))
			assert.Equal(t, q, q.Sub(MinQuality))
			assert.Equal(t, MinQuality, MinQuality.Sub(q))
		}
	})

	t.Run("addition is commutative", func(t *testing.T) {
		for _, a := range qs {
			for _, b := range qs {
				assert.Equal(t, a.Add(b), b.Add(a))
			}
		}
	})

	t.Run("addition is associative", func(t *testing.T) {
		// every fifth value keeps the triple loop small
		var sample []Quality
		for i := 0; i < len(qs); i += 5 {
			sample = append(sample, qs[i])
		}
		for _, a := range sample {
			for _, b := range sample {
				for _, c := range sample {
					assert.Equal(t, a.Add(b.Add(c)), a.Add(b).Add(c), "%s %s %s", a, b, c)
				}
			}
		}
	})
}

func TestQuality_Ordering(t *testing.T) {
	low, high := NewQuality(3), NewQuality(40)

	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(NewQuality(3)))
	assert.True(t, low.Less(high))
	assert.False(t, high.Less(low))
	assert.False(t, low.Less(low))
	assert.True(t, NewQuality(3) == low)
}

func TestQuality_String(t *testing.T) {
	assert.Equal(t, "07", NewQuality(7).String())
	assert.Equal(t, "50", MaxQuality.String())
	assert.Equal(t, "00", MinQuality.String())
}

func TestMagicQuality(t *testing.T) {
	var m MagicQuality
	assert.Equal(t, 80, m.Int())
	assert.Equal(t, "80", m.String())
}
