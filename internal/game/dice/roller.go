package dice

import "fmt"

// Between returns a uniform random int in [lo, hi] drawn from src.
//
// Precondition: src must be non-nil.
// Postcondition: On success lo <= result.Value <= hi; returns an error if lo > hi
// or if the range holds more values than an int can count.
func Between(src Source, lo, hi int) (RangeResult, error) {
	if lo > hi {
		return RangeResult{}, fmt.Errorf("dice: Between: empty range [%d,%d]", lo, hi)
	}
	// Wraps to <= 0 on overflow.
	width := hi - lo + 1
	if width <= 0 {
		return RangeResult{}, fmt.Errorf("dice: Between: range [%d,%d] too wide", lo, hi)
	}
	return RangeResult{
		Min:   lo,
		Max:   hi,
		Value: lo + src.Intn(width),
	}, nil
}
