package brewing

import (
	"time"

	"github.com/andrescamacho/coffeemachine-go/internal/domain/shared"
)

// CleaningAction is the outcome of a cleaning policy evaluation
type CleaningAction int

const (
	// CleaningNoAction means no cleaning is needed yet
	CleaningNoAction CleaningAction = iota

	// CleaningSchedule means cleaning should be scheduled after the current cycle
	CleaningSchedule

	// CleaningImmediate means cleaning is required before the next brew
	CleaningImmediate
)

var cleaningActionNames = map[CleaningAction]string{
	CleaningNoAction:  "NO_ACTION",
	CleaningSchedule:  "SCHEDULE",
	CleaningImmediate: "IMMEDIATE",
}

// Name returns the action name
func (a CleaningAction) Name() string {
	if name, ok := cleaningActionNames[a]; ok {
		return name
	}
	return "UNKNOWN"
}

func (a CleaningAction) String() string {
	return a.Name()
}

// DefaultCleaningPolicy is the standard cleaning evaluator.
//
// Count-based rules:
//   - dirtyCount < scheduleThreshold                        -> NO_ACTION
//   - scheduleThreshold <= dirtyCount < immediateThreshold  -> SCHEDULE
//   - dirtyCount >= immediateThreshold                      -> IMMEDIATE
//
// Optional time-based rule, dominating the count-based ones: if
// maxTimeBetweenCleans is set and the last clean is at least that old,
// the action is IMMEDIATE even at dirtyCount 0.
type DefaultCleaningPolicy struct {
	scheduleThreshold    int
	immediateThreshold   int
	maxTimeBetweenCleans time.Duration
	clock                shared.Clock
}

// NewDefaultCleaningPolicy creates the default cleaning policy.
// Thresholds must satisfy 0 <= scheduleThreshold <= immediateThreshold, else
// an InvalidConfigError is returned. A zero maxTimeBetweenCleans disables the
// time-based rule. A nil clock falls back to the system clock.
func NewDefaultCleaningPolicy(scheduleThreshold, immediateThreshold int, maxTimeBetweenCleans time.Duration, clock shared.Clock) (*DefaultCleaningPolicy, error) {
	if scheduleThreshold < 0 || scheduleThreshold > immediateThreshold {
		return nil, NewInvalidConfigError("cleaning thresholds must satisfy 0 <= schedule <= immediate")
	}
	if maxTimeBetweenCleans < 0 {
		return nil, NewInvalidConfigError("max time between cleans cannot be negative")
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &DefaultCleaningPolicy{
		scheduleThreshold:    scheduleThreshold,
		immediateThreshold:   immediateThreshold,
		maxTimeBetweenCleans: maxTimeBetweenCleans,
		clock:                clock,
	}, nil
}

// Evaluate returns the cleaning action for the given maintenance state
func (p *DefaultCleaningPolicy) Evaluate(dirtyCount int, lastCleaned *time.Time) CleaningAction {
	if p.maxTimeBetweenCleans > 0 && lastCleaned != nil {
		if p.clock.Now().Sub(*lastCleaned) >= p.maxTimeBetweenCleans {
			return CleaningImmediate
		}
	}

	if dirtyCount < p.scheduleThreshold {
		return CleaningNoAction
	}

	if dirtyCount < p.immediateThreshold {
		return CleaningSchedule
	}

	return CleaningImmediate
}
