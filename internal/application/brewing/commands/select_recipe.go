package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/types"
	"github.com/andrescamacho/coffeemachine-go/internal/application/common"
	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
)

// SelectRecipeHandler - Handles recipe selection commands
type SelectRecipeHandler struct {
	machine *brewing.Machine
	catalog brewing.RecipeCatalog
}

// NewSelectRecipeHandler creates a new select recipe handler
func NewSelectRecipeHandler(machine *brewing.Machine, catalog brewing.RecipeCatalog) *SelectRecipeHandler {
	return &SelectRecipeHandler{machine: machine, catalog: catalog}
}

// Handle executes the select recipe command
func (h *SelectRecipeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*types.SelectRecipeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	recipe, err := h.catalog.Get(cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("recipe %q: %w", cmd.Name, err)
	}

	h.machine.SelectRecipe(recipe)

	operationID := uuid.New().String()
	common.LoggerFromContext(ctx).Log("INFO", "Recipe selected", map[string]interface{}{
		"operation_id": operationID,
		"recipe":       recipe.Name(),
	})

	return &types.SelectRecipeResponse{
		OperationID: operationID,
		Recipe:      recipe.ToMapping(),
	}, nil
}
