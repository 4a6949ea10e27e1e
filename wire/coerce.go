package wire

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrUnsupportedType is returned by Coerce for values outside the numeric mapping.
	ErrUnsupportedType = errors.New("wire: unsupported value type")

	// ErrNonFinite is returned by Coerce for NaN and infinite floats.
	ErrNonFinite = errors.New("wire: non-finite number")
)

// Coerce maps a native numeric value onto its wire representation:
//
//	int, int8, int16, int32, int64      → int64
//	uint, uint8, uint16, uint32, uint64 → uint64
//	float32                             → float64 (shortest float32 decimal)
//	float64                             → float64
//	[]float32, []float64                → []float64
//	[]int, []int8 … []int64             → []int64
//	[]uint, []uint16 … []uint64         → []uint64
//
// []uint8 is excluded because it is indistinguishable from []byte.
func Coerce(v any) (any, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint:
		return uint64(x), nil
	case uint8:
		return uint64(x), nil
	case uint16:
		return uint64(x), nil
	case uint32:
		return uint64(x), nil
	case uint64:
		return x, nil
	case float32:
		return float32To64(x)
	case float64:
		if err := checkFinite(x); err != nil {
			return nil, err
		}
		return x, nil
	case []float32:
		out := make([]float64, len(x))
		for i, f := range x {
			g, err := float32To64(f)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = g
		}
		return out, nil
	case []float64:
		out := make([]float64, len(x))
		for i, f := range x {
			if err := checkFinite(f); err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = f
		}
		return out, nil
	case []int:
		return widen[int, int64](x), nil
	case []int8:
		return widen[int8, int64](x), nil
	case []int16:
		return widen[int16, int64](x), nil
	case []int32:
		return widen[int32, int64](x), nil
	case []int64:
		return widen[int64, int64](x), nil
	case []uint:
		return widen[uint, uint64](x), nil
	case []uint16:
		return widen[uint16, uint64](x), nil
	case []uint32:
		return widen[uint32, uint64](x), nil
	case []uint64:
		return widen[uint64, uint64](x), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// float32To64 widens f so that it renders as the shortest decimal that
// round-trips through float32 (0.1, not 0.10000000149011612).
func float32To64(f float32) (float64, error) {
	if err := checkFinite(float64(f)); err != nil {
		return 0, err
	}
	g, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	if err != nil {
		return 0, err
	}
	return g, nil
}

func checkFinite(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v", ErrNonFinite, f)
	}
	return nil
}

func widen[S ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint16 | ~uint32 | ~uint64, D int64 | uint64](s []S) []D {
	out := make([]D, len(s))
	for i, v := range s {
		out[i] = D(v)
	}
	return out
}
