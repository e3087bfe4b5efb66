package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/coffeemachine-go/internal/adapters/catalog"
	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/commands"
	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/types"
	"github.com/andrescamacho/coffeemachine-go/internal/application/common"
	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
	"github.com/andrescamacho/coffeemachine-go/internal/domain/shared"
)

func newTestMachine(t *testing.T) *brewing.Machine {
	t.Helper()

	clock := shared.NewMockClock(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	water, err := brewing.NewWaterTank(500, 150)
	require.NoError(t, err)
	beans, err := brewing.NewBeanContainer(500, 50)
	require.NoError(t, err)
	brewPolicy, err := brewing.NewDefaultBrewPolicy(5, false)
	require.NoError(t, err)
	cleaningPolicy, err := brewing.NewDefaultCleaningPolicy(3, 6, 0, clock)
	require.NoError(t, err)

	machine, err := brewing.NewMachine(water, beans, brewPolicy, cleaningPolicy, nil, clock)
	require.NoError(t, err)
	return machine
}

func newTestCatalog(t *testing.T) brewing.RecipeCatalog {
	t.Helper()

	espresso, err := brewing.NewRecipe("espresso", 30, 8, brewing.GrindFine)
	require.NoError(t, err)
	return catalog.NewMemoryCatalog(espresso)
}

func TestBrewCoffeeHandler_Success(t *testing.T) {
	// Arrange
	machine := newTestMachine(t)
	handler := commands.NewBrewCoffeeHandler(machine)
	selectHandler := commands.NewSelectRecipeHandler(machine, newTestCatalog(t))

	recorder := common.NewMemoryLogger()
	ctx := common.WithLogger(context.Background(), recorder)

	_, err := selectHandler.Handle(ctx, &types.SelectRecipeCommand{Name: "espresso"})
	require.NoError(t, err)

	// Act
	response, err := handler.Handle(ctx, &types.BrewCoffeeCommand{})

	// Assert
	require.NoError(t, err)
	result := response.(*types.BrewCoffeeResponse)
	assert.NotEmpty(t, result.OperationID)
	assert.Equal(t, "espresso", result.Recipe)
	assert.Equal(t, "OK", result.Decision)
	assert.Equal(t, "IDLE", result.State)
	assert.Equal(t, 1, result.DirtyCount)
	assert.Equal(t, 120, result.Water.CurrentLevel)
	assert.Equal(t, 42, result.Beans.CurrentLevel)

	entries := recorder.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "Brew cycle evaluated", entries[len(entries)-1].Message)
}

func TestBrewCoffeeHandler_NoRecipeSelected(t *testing.T) {
	handler := commands.NewBrewCoffeeHandler(newTestMachine(t))

	_, err := handler.Handle(context.Background(), &types.BrewCoffeeCommand{})

	require.ErrorIs(t, err, brewing.ErrNoRecipeSelected)
}

func TestBrewCoffeeHandler_RejectedDecisionIsNotAnError(t *testing.T) {
	// Arrange - drain water so the policy rejects
	machine := newTestMachine(t)
	require.NoError(t, machine.Water().Consume(130))
	selectHandler := commands.NewSelectRecipeHandler(machine, newTestCatalog(t))
	_, err := selectHandler.Handle(context.Background(), &types.SelectRecipeCommand{Name: "espresso"})
	require.NoError(t, err)
	handler := commands.NewBrewCoffeeHandler(machine)

	// Act
	response, err := handler.Handle(context.Background(), &types.BrewCoffeeCommand{})

	// Assert - rejection is a decision value, not an error
	require.NoError(t, err)
	result := response.(*types.BrewCoffeeResponse)
	assert.Equal(t, "OUT_OF_WATER", result.Decision)
	assert.Equal(t, "OUT_OF_WATER", result.State)
	assert.Equal(t, 0, result.DirtyCount)
}

func TestBrewCoffeeHandler_InvalidRequestType(t *testing.T) {
	handler := commands.NewBrewCoffeeHandler(newTestMachine(t))

	_, err := handler.Handle(context.Background(), &types.CleanMachineCommand{})

	assert.Error(t, err)
}

func TestSelectRecipeHandler_UnknownRecipe(t *testing.T) {
	handler := commands.NewSelectRecipeHandler(newTestMachine(t), newTestCatalog(t))

	_, err := handler.Handle(context.Background(), &types.SelectRecipeCommand{Name: "flat-white"})

	require.ErrorIs(t, err, brewing.ErrRecipeNotFound)
}

func TestSelectRecipeHandler_Success(t *testing.T) {
	machine := newTestMachine(t)
	handler := commands.NewSelectRecipeHandler(machine, newTestCatalog(t))

	response, err := handler.Handle(context.Background(), &types.SelectRecipeCommand{Name: "espresso"})

	require.NoError(t, err)
	result := response.(*types.SelectRecipeResponse)
	assert.Equal(t, "espresso", result.Recipe["name"])
	require.NotNil(t, machine.ActiveRecipe())
	assert.Equal(t, "espresso", machine.ActiveRecipe().Name())
}

func TestRefillResourceHandler_Water(t *testing.T) {
	machine := newTestMachine(t)
	handler := commands.NewRefillResourceHandler(machine)

	response, err := handler.Handle(context.Background(), &types.RefillResourceCommand{Resource: "water", Amount: 200})

	require.NoError(t, err)
	result := response.(*types.RefillResourceResponse)
	assert.Equal(t, "STILL_NOT_FULL", result.Result)
	assert.Equal(t, 350, result.Status.CurrentLevel)
}

func TestRefillResourceHandler_Beans(t *testing.T) {
	machine := newTestMachine(t)
	handler := commands.NewRefillResourceHandler(machine)

	response, err := handler.Handle(context.Background(), &types.RefillResourceCommand{Resource: "beans", Amount: 600})

	require.NoError(t, err)
	result := response.(*types.RefillResourceResponse)
	assert.Equal(t, "NOW_FULL", result.Result)
	assert.True(t, result.Status.Full)
}

func TestRefillResourceHandler_UnknownResource(t *testing.T) {
	handler := commands.NewRefillResourceHandler(newTestMachine(t))

	_, err := handler.Handle(context.Background(), &types.RefillResourceCommand{Resource: "milk", Amount: 10})

	assert.Error(t, err)
}

func TestRefillResourceHandler_InvalidAmount(t *testing.T) {
	handler := commands.NewRefillResourceHandler(newTestMachine(t))

	_, err := handler.Handle(context.Background(), &types.RefillResourceCommand{Resource: "water", Amount: 0})

	var opErr *brewing.InvalidOperationError
	require.ErrorAs(t, err, &opErr)
}

func TestCleanMachineHandler(t *testing.T) {
	machine := newTestMachine(t)
	handler := commands.NewCleanMachineHandler(machine)

	response, err := handler.Handle(context.Background(), &types.CleanMachineCommand{})

	require.NoError(t, err)
	result := response.(*types.CleanMachineResponse)
	assert.Equal(t, "IDLE", result.State)
	assert.False(t, result.CleanedAt.IsZero())
	assert.Equal(t, 0, machine.DirtyCount())
}

func TestScheduleCleaningHandler(t *testing.T) {
	machine := newTestMachine(t)
	handler := commands.NewScheduleCleaningHandler(machine)

	response, err := handler.Handle(context.Background(), &types.ScheduleCleaningCommand{})

	require.NoError(t, err)
	result := response.(*types.ScheduleCleaningResponse)
	assert.True(t, result.CleaningScheduled)
	assert.True(t, machine.CleaningScheduled())
}
