package brewing

// RefillResult is the outcome of a refill operation
type RefillResult int

const (
	// RefillStillNotFull means the container is below capacity after the refill
	RefillStillNotFull RefillResult = iota

	// RefillNowFull means the container reached capacity
	RefillNowFull

	// RefillOverflowError means the strict policy rejected an overflowing refill
	RefillOverflowError
)

var refillResultNames = map[RefillResult]string{
	RefillStillNotFull:  "STILL_NOT_FULL",
	RefillNowFull:       "NOW_FULL",
	RefillOverflowError: "OVERFLOW_ERROR",
}

// Name returns the result name
func (r RefillResult) Name() string {
	if name, ok := refillResultNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

func (r RefillResult) String() string {
	return r.Name()
}

// CapRefillPolicy is the default, forgiving refill strategy: a refill past
// capacity clamps the level at maximum and never errors on overflow.
type CapRefillPolicy struct{}

// NewCapRefillPolicy creates the capping refill policy
func NewCapRefillPolicy() *CapRefillPolicy {
	return &CapRefillPolicy{}
}

// OnRefill computes the post-refill level with capping semantics
func (p *CapRefillPolicy) OnRefill(currentLevel, refillAmount, maximum int) (int, RefillResult, error) {
	if refillAmount <= 0 {
		return currentLevel, RefillStillNotFull, NewInvalidOperationError("refill amount must be greater than zero")
	}

	newLevel := currentLevel + refillAmount
	if newLevel >= maximum {
		return maximum, RefillNowFull, nil
	}
	return newLevel, RefillStillNotFull, nil
}

// StrictRefillPolicy rejects overflowing refills instead of capping: the
// level is left unchanged and OVERFLOW_ERROR is reported to the caller.
type StrictRefillPolicy struct{}

// NewStrictRefillPolicy creates the strict refill policy
func NewStrictRefillPolicy() *StrictRefillPolicy {
	return &StrictRefillPolicy{}
}

// OnRefill computes the post-refill level with strict overflow semantics
func (p *StrictRefillPolicy) OnRefill(currentLevel, refillAmount, maximum int) (int, RefillResult, error) {
	if refillAmount <= 0 {
		return currentLevel, RefillStillNotFull, NewInvalidOperationError("refill amount must be greater than zero")
	}

	newLevel := currentLevel + refillAmount
	if newLevel > maximum {
		return currentLevel, RefillOverflowError, nil
	}
	if newLevel == maximum {
		return maximum, RefillNowFull, nil
	}
	return newLevel, RefillStillNotFull, nil
}
