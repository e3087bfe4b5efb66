package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/types"
	"github.com/andrescamacho/coffeemachine-go/internal/application/common"
	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
)

// CleanMachineHandler - Handles clean machine commands
type CleanMachineHandler struct {
	machine *brewing.Machine
}

// NewCleanMachineHandler creates a new clean machine handler
func NewCleanMachineHandler(machine *brewing.Machine) *CleanMachineHandler {
	return &CleanMachineHandler{machine: machine}
}

// Handle executes the clean machine command
func (h *CleanMachineHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	_, ok := request.(*types.CleanMachineCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	h.machine.Clean()

	operationID := uuid.New().String()
	cleanedAt := *h.machine.LastCleaned()

	common.LoggerFromContext(ctx).Log("INFO", "Machine cleaned", map[string]interface{}{
		"operation_id": operationID,
		"cleaned_at":   cleanedAt,
	})

	return &types.CleanMachineResponse{
		OperationID: operationID,
		State:       string(h.machine.State()),
		CleanedAt:   cleanedAt,
	}, nil
}
