package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged range rolls.
// All rolls are logged at debug level with bounds and result.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Between rolls a uniform int in [lo, hi] and logs the result at debug level.
//
// Postcondition: result logged; returns RangeResult or error.
func (r *Roller) Between(lo, hi int) (RangeResult, error) {
	result, err := Between(r.src, lo, hi)
	if err != nil {
		return RangeResult{}, err
	}
	r.logger.Debug("range roll",
		zap.Int("min", result.Min),
		zap.Int("max", result.Max),
		zap.Int("value", result.Value),
	)
	return result, nil
}
