// Package safeconv provides numeric narrowing conversions for values that
// end up in fixed-width archive fields.
package safeconv

import "math"

// MaxUint32 is the maximum value for uint32 type.
const MaxUint32 = uint32(math.MaxUint32)

// FloatToUint32 truncates v toward zero and clamps it into the uint32 range.
// NaN and negative values become 0.
func FloatToUint32(v float64) uint32 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= float64(MaxUint32):
		return MaxUint32
	default:
		return uint32(v)
	}
}

// OptionalFloatToUint32 converts an optional dimension, mapping nil to 0.
func OptionalFloatToUint32(v *float64) uint32 {
	if v == nil {
		return 0
	}

	return FloatToUint32(*v)
}

// OptionalUint32 dereferences v, mapping nil to 0.
func OptionalUint32(v *uint32) uint32 {
	if v == nil {
		return 0
	}

	return *v
}

// Int64ToUint64 converts a size, mapping negative values to 0.
func Int64ToUint64(v int64) uint64 {
	if v < 0 {
		return 0
	}

	return uint64(v)
}
