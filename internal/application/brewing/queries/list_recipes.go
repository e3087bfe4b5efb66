package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/types"
	"github.com/andrescamacho/coffeemachine-go/internal/application/common"
	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
)

// ListRecipesHandler - Handles recipe listing queries
type ListRecipesHandler struct {
	catalog brewing.RecipeCatalog
}

// NewListRecipesHandler creates a new list recipes handler
func NewListRecipesHandler(catalog brewing.RecipeCatalog) *ListRecipesHandler {
	return &ListRecipesHandler{catalog: catalog}
}

// Handle executes the list recipes query
func (h *ListRecipesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	_, ok := request.(*types.ListRecipesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	recipes := h.catalog.List()
	summaries := make([]types.RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summaries = append(summaries, types.RecipeSummaryFrom(recipe))
	}

	return &types.ListRecipesResponse{Recipes: summaries}, nil
}
