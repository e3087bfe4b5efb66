package brewing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
	"github.com/andrescamacho/coffeemachine-go/internal/domain/shared"
)

type machineFixture struct {
	machine *brewing.Machine
	clock   *shared.MockClock
}

// newMachineFixture builds the default machine: water 150/500, beans 50/500,
// brewing blocked after 5 dirty brews, cleaning scheduled at 3 and immediate
// at 6, no time-based rule unless maxBetween is set.
func newMachineFixture(t *testing.T, refillPolicy brewing.RefillPolicy, maxBetween time.Duration) *machineFixture {
	t.Helper()

	clock := shared.NewMockClock(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))

	water, err := brewing.NewWaterTank(500, 150)
	require.NoError(t, err)
	beans, err := brewing.NewBeanContainer(500, 50)
	require.NoError(t, err)

	brewPolicy, err := brewing.NewDefaultBrewPolicy(5, false)
	require.NoError(t, err)
	cleaningPolicy, err := brewing.NewDefaultCleaningPolicy(3, 6, maxBetween, clock)
	require.NoError(t, err)

	machine, err := brewing.NewMachine(water, beans, brewPolicy, cleaningPolicy, refillPolicy, clock)
	require.NoError(t, err)

	return &machineFixture{machine: machine, clock: clock}
}

func selectEspresso(t *testing.T, machine *brewing.Machine) {
	t.Helper()
	espresso, err := brewing.NewRecipe("espresso", 30, 8, brewing.GrindFine)
	require.NoError(t, err)
	machine.SelectRecipe(espresso)
}

func TestNewMachine_RequiresDependencies(t *testing.T) {
	water, err := brewing.NewWaterTank(500, 150)
	require.NoError(t, err)
	beans, err := brewing.NewBeanContainer(500, 50)
	require.NoError(t, err)
	brewPolicy, err := brewing.NewDefaultBrewPolicy(5, false)
	require.NoError(t, err)
	cleaningPolicy, err := brewing.NewDefaultCleaningPolicy(3, 6, 0, nil)
	require.NoError(t, err)

	var configErr *brewing.InvalidConfigError

	_, err = brewing.NewMachine(nil, beans, brewPolicy, cleaningPolicy, nil, nil)
	require.ErrorAs(t, err, &configErr)

	_, err = brewing.NewMachine(water, beans, nil, cleaningPolicy, nil, nil)
	require.ErrorAs(t, err, &configErr)

	_, err = brewing.NewMachine(water, beans, brewPolicy, nil, nil, nil)
	require.ErrorAs(t, err, &configErr)

	// Refill policy and clock are optional
	machine, err := brewing.NewMachine(water, beans, brewPolicy, cleaningPolicy, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, brewing.StateIdle, machine.State())
}

func TestMachine_BrewWithoutRecipe(t *testing.T) {
	f := newMachineFixture(t, nil, 0)

	_, err := f.machine.Brew()

	require.ErrorIs(t, err, brewing.ErrNoRecipeSelected)
	assert.Equal(t, brewing.StateIdle, f.machine.State())
	assert.Equal(t, 0, f.machine.DirtyCount())
}

func TestMachine_SuccessfulBrew(t *testing.T) {
	// Arrange - water 150/500, beans 50/500, espresso 30ml/8g
	f := newMachineFixture(t, nil, 0)
	selectEspresso(t, f.machine)

	// Act
	decision, err := f.machine.Brew()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, brewing.BrewOK, decision)
	assert.Equal(t, 120, f.machine.Water().CurrentLevel())
	assert.Equal(t, 42, f.machine.Beans().CurrentLevel())
	assert.Equal(t, 1, f.machine.DirtyCount())
	assert.Equal(t, brewing.StateIdle, f.machine.State())
	assert.False(t, f.machine.CleaningScheduled())
}

func TestMachine_RejectedBrewLeavesStateUntouched(t *testing.T) {
	// Arrange - drain the water below the espresso requirement
	f := newMachineFixture(t, nil, 0)
	require.NoError(t, f.machine.Water().Consume(130))
	selectEspresso(t, f.machine)

	// Act
	decision, err := f.machine.Brew()

	// Assert - no resource or dirty count mutation on rejection
	require.NoError(t, err)
	assert.Equal(t, brewing.BrewOutOfWater, decision)
	assert.Equal(t, brewing.StateOutOfWater, f.machine.State())
	assert.Equal(t, 20, f.machine.Water().CurrentLevel())
	assert.Equal(t, 50, f.machine.Beans().CurrentLevel())
	assert.Equal(t, 0, f.machine.DirtyCount())
}

func TestMachine_BrewSchedulesCleaningAtThreshold(t *testing.T) {
	// Arrange - schedule threshold is 3 dirty brews
	f := newMachineFixture(t, nil, 0)
	selectEspresso(t, f.machine)

	// Act
	for i := 0; i < 3; i++ {
		decision, err := f.machine.Brew()
		require.NoError(t, err)
		require.Equal(t, brewing.BrewOK, decision)
	}

	// Assert - scheduled flag set, machine stays IDLE
	assert.Equal(t, 3, f.machine.DirtyCount())
	assert.True(t, f.machine.CleaningScheduled())
	assert.Equal(t, brewing.StateIdle, f.machine.State())
}

func TestMachine_BrewBlockedAtCleanThreshold(t *testing.T) {
	// Arrange - brew policy blocks at 5 dirty brews
	f := newMachineFixture(t, nil, 0)
	selectEspresso(t, f.machine)
	for i := 0; i < 5; i++ {
		decision, err := f.machine.Brew()
		require.NoError(t, err)
		require.Equal(t, brewing.BrewOK, decision)
	}

	// Act
	decision, err := f.machine.Brew()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, brewing.BrewNeedsCleaning, decision)
	assert.Equal(t, brewing.StateNeedsCleaning, f.machine.State())
	assert.Equal(t, 5, f.machine.DirtyCount())
}

func TestMachine_ImmediateCleaningActionSetsNeedsCleaning(t *testing.T) {
	// Arrange - cleaning demands immediate action before the brew policy blocks
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	water, err := brewing.NewWaterTank(500, 500)
	require.NoError(t, err)
	beans, err := brewing.NewBeanContainer(500, 500)
	require.NoError(t, err)
	brewPolicy, err := brewing.NewDefaultBrewPolicy(10, false)
	require.NoError(t, err)
	cleaningPolicy, err := brewing.NewDefaultCleaningPolicy(1, 2, 0, clock)
	require.NoError(t, err)
	machine, err := brewing.NewMachine(water, beans, brewPolicy, cleaningPolicy, nil, clock)
	require.NoError(t, err)
	selectEspresso(t, machine)

	// Act - second successful brew reaches the immediate threshold
	_, err = machine.Brew()
	require.NoError(t, err)
	decision, err := machine.Brew()

	// Assert - the brew itself succeeded but the machine now demands cleaning
	require.NoError(t, err)
	assert.Equal(t, brewing.BrewOK, decision)
	assert.Equal(t, brewing.StateNeedsCleaning, machine.State())
	assert.Equal(t, 2, machine.DirtyCount())
}

func TestMachine_CleanResetsMaintenance(t *testing.T) {
	// Arrange
	f := newMachineFixture(t, nil, 0)
	selectEspresso(t, f.machine)
	for i := 0; i < 3; i++ {
		_, err := f.machine.Brew()
		require.NoError(t, err)
	}
	require.True(t, f.machine.CleaningScheduled())

	// Act
	f.machine.Clean()

	// Assert
	assert.Equal(t, 0, f.machine.DirtyCount())
	assert.False(t, f.machine.CleaningScheduled())
	assert.Equal(t, brewing.StateIdle, f.machine.State())
	require.NotNil(t, f.machine.LastCleaned())
	assert.Equal(t, f.clock.Now(), *f.machine.LastCleaned())
}

func TestMachine_TimeBasedCleaningAfterIdlePeriod(t *testing.T) {
	// Arrange - weekly time rule, machine cleaned then left idle for 8 days
	f := newMachineFixture(t, nil, 7*24*time.Hour)
	selectEspresso(t, f.machine)
	f.machine.Clean()
	f.clock.Advance(8 * 24 * time.Hour)

	// Act
	decision, err := f.machine.Brew()

	// Assert - brew succeeds, cleaning demanded immediately afterwards
	require.NoError(t, err)
	assert.Equal(t, brewing.BrewOK, decision)
	assert.Equal(t, brewing.StateNeedsCleaning, f.machine.State())
}

func TestMachine_ScheduleCleaningDoesNotTouchState(t *testing.T) {
	f := newMachineFixture(t, nil, 0)

	f.machine.ScheduleCleaning()

	assert.True(t, f.machine.CleaningScheduled())
	assert.Equal(t, brewing.StateIdle, f.machine.State())
	assert.Equal(t, 0, f.machine.DirtyCount())
}

func TestMachine_RefillDelegation(t *testing.T) {
	f := newMachineFixture(t, nil, 0)

	result, err := f.machine.RefillWater(100)
	require.NoError(t, err)
	assert.Equal(t, brewing.RefillStillNotFull, result)
	assert.Equal(t, 250, f.machine.Water().CurrentLevel())

	result, err = f.machine.RefillBeans(1000)
	require.NoError(t, err)
	assert.Equal(t, brewing.RefillNowFull, result)
	assert.Equal(t, 500, f.machine.Beans().CurrentLevel())
}

func TestMachine_RefillInvalidAmount(t *testing.T) {
	f := newMachineFixture(t, nil, 0)

	var opErr *brewing.InvalidOperationError
	_, err := f.machine.RefillWater(0)
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, 150, f.machine.Water().CurrentLevel())
}

func TestMachine_StrictRefillRejectsOverflow(t *testing.T) {
	// Arrange - strict strategy substituted at construction
	f := newMachineFixture(t, brewing.NewStrictRefillPolicy(), 0)

	// Act
	result, err := f.machine.RefillWater(400)

	// Assert - overflow reported, level unchanged
	require.NoError(t, err)
	assert.Equal(t, brewing.RefillOverflowError, result)
	assert.Equal(t, 150, f.machine.Water().CurrentLevel())

	// A fitting refill still works
	result, err = f.machine.RefillWater(350)
	require.NoError(t, err)
	assert.Equal(t, brewing.RefillNowFull, result)
	assert.Equal(t, 500, f.machine.Water().CurrentLevel())
}

func TestMachine_WaterOnlyRecipeSkipsBeans(t *testing.T) {
	// Arrange
	f := newMachineFixture(t, nil, 0)
	hotWater, err := brewing.NewRecipe("hot-water", 100, 0, brewing.GrindNone)
	require.NoError(t, err)
	f.machine.SelectRecipe(hotWater)

	// Act
	decision, err := f.machine.Brew()

	// Assert - beans untouched
	require.NoError(t, err)
	assert.Equal(t, brewing.BrewOK, decision)
	assert.Equal(t, 50, f.machine.Water().CurrentLevel())
	assert.Equal(t, 50, f.machine.Beans().CurrentLevel())
}
