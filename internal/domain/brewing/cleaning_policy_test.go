package brewing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
	"github.com/andrescamacho/coffeemachine-go/internal/domain/shared"
)

func TestDefaultCleaningPolicy_ThresholdValidation(t *testing.T) {
	var configErr *brewing.InvalidConfigError

	_, err := brewing.NewDefaultCleaningPolicy(-1, 5, 0, nil)
	require.ErrorAs(t, err, &configErr)

	// schedule above immediate is invalid
	_, err = brewing.NewDefaultCleaningPolicy(10, 5, 0, nil)
	require.ErrorAs(t, err, &configErr)

	// equal thresholds are allowed
	_, err = brewing.NewDefaultCleaningPolicy(5, 5, 0, nil)
	require.NoError(t, err)
}

func TestDefaultCleaningPolicy_CountBands(t *testing.T) {
	policy, err := brewing.NewDefaultCleaningPolicy(3, 6, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, brewing.CleaningNoAction, policy.Evaluate(0, nil))
	assert.Equal(t, brewing.CleaningNoAction, policy.Evaluate(2, nil))

	// At the schedule threshold the action is SCHEDULE, not NO_ACTION
	assert.Equal(t, brewing.CleaningSchedule, policy.Evaluate(3, nil))
	assert.Equal(t, brewing.CleaningSchedule, policy.Evaluate(5, nil))

	// At the immediate threshold the action is IMMEDIATE, not SCHEDULE
	assert.Equal(t, brewing.CleaningImmediate, policy.Evaluate(6, nil))
	assert.Equal(t, brewing.CleaningImmediate, policy.Evaluate(100, nil))
}

func TestDefaultCleaningPolicy_TimeRuleDominates(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	policy, err := brewing.NewDefaultCleaningPolicy(3, 6, 7*24*time.Hour, clock)
	require.NoError(t, err)

	lastCleaned := clock.Now().Add(-8 * 24 * time.Hour)

	// Act / Assert - IMMEDIATE even at dirty count 0
	assert.Equal(t, brewing.CleaningImmediate, policy.Evaluate(0, &lastCleaned))
}

func TestDefaultCleaningPolicy_TimeRuleExactBoundary(t *testing.T) {
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	policy, err := brewing.NewDefaultCleaningPolicy(3, 6, 7*24*time.Hour, clock)
	require.NoError(t, err)

	// Exactly the max interval ago triggers the time rule
	lastCleaned := clock.Now().Add(-7 * 24 * time.Hour)
	assert.Equal(t, brewing.CleaningImmediate, policy.Evaluate(0, &lastCleaned))

	// One second short of the interval falls back to the count rules
	recentClean := clock.Now().Add(-7*24*time.Hour + time.Second)
	assert.Equal(t, brewing.CleaningNoAction, policy.Evaluate(0, &recentClean))
}

func TestDefaultCleaningPolicy_TimeRuleNeedsKnownLastClean(t *testing.T) {
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	policy, err := brewing.NewDefaultCleaningPolicy(3, 6, time.Hour, clock)
	require.NoError(t, err)

	// Never cleaned: time rule does not apply, count rules decide
	assert.Equal(t, brewing.CleaningNoAction, policy.Evaluate(0, nil))
	assert.Equal(t, brewing.CleaningSchedule, policy.Evaluate(3, nil))
}

func TestDefaultCleaningPolicy_TimeRuleDisabledByZeroInterval(t *testing.T) {
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	policy, err := brewing.NewDefaultCleaningPolicy(3, 6, 0, clock)
	require.NoError(t, err)

	ancient := clock.Now().Add(-365 * 24 * time.Hour)
	assert.Equal(t, brewing.CleaningNoAction, policy.Evaluate(0, &ancient))
}
