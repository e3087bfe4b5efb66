package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/types"
	"github.com/andrescamacho/coffeemachine-go/internal/application/common"
	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
)

// BrewCoffeeHandler - Handles brew coffee commands
type BrewCoffeeHandler struct {
	machine *brewing.Machine
}

// NewBrewCoffeeHandler creates a new brew coffee handler
func NewBrewCoffeeHandler(machine *brewing.Machine) *BrewCoffeeHandler {
	return &BrewCoffeeHandler{machine: machine}
}

// Handle executes the brew coffee command
func (h *BrewCoffeeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	_, ok := request.(*types.BrewCoffeeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := common.LoggerFromContext(ctx)
	operationID := uuid.New().String()

	decision, err := h.machine.Brew()
	if err != nil {
		if errors.Is(err, brewing.ErrNoRecipeSelected) {
			return nil, err
		}
		logger.Log("ERROR", "Brew cycle failed", map[string]interface{}{
			"operation_id": operationID,
			"error":        err.Error(),
		})
		return nil, fmt.Errorf("brew failed: %w", err)
	}

	response := h.buildBrewResponse(operationID, decision)

	logger.Log("INFO", "Brew cycle evaluated", map[string]interface{}{
		"operation_id": operationID,
		"recipe":       response.Recipe,
		"decision":     response.Decision,
		"state":        response.State,
		"dirty_count":  response.DirtyCount,
	})

	return response, nil
}

func (h *BrewCoffeeHandler) buildBrewResponse(operationID string, decision brewing.BrewDecision) *types.BrewCoffeeResponse {
	recipeName := ""
	if recipe := h.machine.ActiveRecipe(); recipe != nil {
		recipeName = recipe.Name()
	}

	return &types.BrewCoffeeResponse{
		OperationID:       operationID,
		Recipe:            recipeName,
		Decision:          decision.Name(),
		State:             string(h.machine.State()),
		DirtyCount:        h.machine.DirtyCount(),
		CleaningScheduled: h.machine.CleaningScheduled(),
		Water:             types.ResourceStatusFrom(h.machine.Water()),
		Beans:             types.ResourceStatusFrom(h.machine.Beans()),
	}
}
