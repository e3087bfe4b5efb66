package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/types"
	"github.com/andrescamacho/coffeemachine-go/internal/application/common"
	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
)

// GetMachineStatusHandler - Handles machine status queries
type GetMachineStatusHandler struct {
	machine *brewing.Machine
}

// NewGetMachineStatusHandler creates a new machine status handler
func NewGetMachineStatusHandler(machine *brewing.Machine) *GetMachineStatusHandler {
	return &GetMachineStatusHandler{machine: machine}
}

// Handle executes the machine status query
func (h *GetMachineStatusHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	_, ok := request.(*types.GetMachineStatusQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	recipeName := ""
	if recipe := h.machine.ActiveRecipe(); recipe != nil {
		recipeName = recipe.Name()
	}

	return &types.MachineStatusResponse{
		State:             string(h.machine.State()),
		ActiveRecipe:      recipeName,
		DirtyCount:        h.machine.DirtyCount(),
		LastCleaned:       h.machine.LastCleaned(),
		CleaningScheduled: h.machine.CleaningScheduled(),
		Water:             types.ResourceStatusFrom(h.machine.Water()),
		Beans:             types.ResourceStatusFrom(h.machine.Beans()),
	}, nil
}
