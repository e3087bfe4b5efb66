package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/types"
	"github.com/andrescamacho/coffeemachine-go/internal/application/common"
	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
)

// ScheduleCleaningHandler - Handles schedule cleaning commands
type ScheduleCleaningHandler struct {
	machine *brewing.Machine
}

// NewScheduleCleaningHandler creates a new schedule cleaning handler
func NewScheduleCleaningHandler(machine *brewing.Machine) *ScheduleCleaningHandler {
	return &ScheduleCleaningHandler{machine: machine}
}

// Handle executes the schedule cleaning command
func (h *ScheduleCleaningHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	_, ok := request.(*types.ScheduleCleaningCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	h.machine.ScheduleCleaning()

	operationID := uuid.New().String()
	common.LoggerFromContext(ctx).Log("INFO", "Cleaning scheduled", map[string]interface{}{
		"operation_id": operationID,
	})

	return &types.ScheduleCleaningResponse{
		OperationID:       operationID,
		CleaningScheduled: h.machine.CleaningScheduled(),
	}, nil
}
