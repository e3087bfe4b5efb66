package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/types"
	"github.com/andrescamacho/coffeemachine-go/internal/application/common"
	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
)

// RefillResourceHandler - Handles container refill commands
type RefillResourceHandler struct {
	machine *brewing.Machine
}

// NewRefillResourceHandler creates a new refill resource handler
func NewRefillResourceHandler(machine *brewing.Machine) *RefillResourceHandler {
	return &RefillResourceHandler{machine: machine}
}

// Handle executes the refill resource command
func (h *RefillResourceHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*types.RefillResourceCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	result, container, err := h.refill(cmd)
	if err != nil {
		return nil, fmt.Errorf("refill %s failed: %w", cmd.Resource, err)
	}

	operationID := uuid.New().String()
	common.LoggerFromContext(ctx).Log("INFO", "Container refilled", map[string]interface{}{
		"operation_id": operationID,
		"resource":     cmd.Resource,
		"amount":       cmd.Amount,
		"result":       result.Name(),
		"level":        container.CurrentLevel(),
	})

	return &types.RefillResourceResponse{
		OperationID: operationID,
		Resource:    cmd.Resource,
		Result:      result.Name(),
		Status:      types.ResourceStatusFrom(container),
	}, nil
}

func (h *RefillResourceHandler) refill(cmd *types.RefillResourceCommand) (brewing.RefillResult, *brewing.ResourceContainer, error) {
	switch brewing.Resource(cmd.Resource) {
	case brewing.ResourceWater:
		result, err := h.machine.RefillWater(cmd.Amount)
		return result, h.machine.Water(), err
	case brewing.ResourceBeans:
		result, err := h.machine.RefillBeans(cmd.Amount)
		return result, h.machine.Beans(), err
	default:
		return 0, nil, fmt.Errorf("unknown resource %q (want water or beans)", cmd.Resource)
	}
}
