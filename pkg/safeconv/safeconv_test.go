package safeconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatToUint32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want uint32
	}{
		{name: "integer", in: 24, want: 24},
		{name: "truncates", in: 24.9, want: 24},
		{name: "zero", in: 0, want: 0},
		{name: "negative", in: -3, want: 0},
		{name: "nan", in: math.NaN(), want: 0},
		{name: "too_large", in: 1e12, want: MaxUint32},
		{name: "inf", in: math.Inf(1), want: MaxUint32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FloatToUint32(tt.in))
		})
	}
}

func TestOptionalConversions(t *testing.T) {
	t.Parallel()

	f := 12.5
	u := uint32(7)

	assert.Equal(t, uint32(0), OptionalFloatToUint32(nil))
	assert.Equal(t, uint32(12), OptionalFloatToUint32(&f))
	assert.Equal(t, uint32(0), OptionalUint32(nil))
	assert.Equal(t, uint32(7), OptionalUint32(&u))
}

func TestInt64ToUint64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), Int64ToUint64(-5))
	assert.Equal(t, uint64(0), Int64ToUint64(0))
	assert.Equal(t, uint64(1<<40), Int64ToUint64(1<<40))
}
