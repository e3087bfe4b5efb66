package types

import "time"

// ResourceStatus is a read-only snapshot of one container
type ResourceStatus struct {
	Resource         string
	CurrentLevel     int
	MaximumLevel     int
	MissingCapacity  int
	FulfillmentRatio float64
	Empty            bool
	Full             bool
}

// BrewCoffeeResponse reports the outcome of a brew cycle
type BrewCoffeeResponse struct {
	OperationID       string
	Recipe            string
	Decision          string
	State             string
	DirtyCount        int
	CleaningScheduled bool
	Water             ResourceStatus
	Beans             ResourceStatus
}

// SelectRecipeResponse reports the selected recipe
type SelectRecipeResponse struct {
	OperationID string
	Recipe      map[string]interface{}
}

// RefillResourceResponse reports the outcome of a refill
type RefillResourceResponse struct {
	OperationID string
	Resource    string
	Result      string
	Status      ResourceStatus
}

// CleanMachineResponse reports the state after a clean
type CleanMachineResponse struct {
	OperationID string
	State       string
	CleanedAt   time.Time
}

// ScheduleCleaningResponse confirms the scheduled flag was set
type ScheduleCleaningResponse struct {
	OperationID       string
	CleaningScheduled bool
}

// MachineStatusResponse is the full status snapshot
type MachineStatusResponse struct {
	State             string
	ActiveRecipe      string
	DirtyCount        int
	LastCleaned       *time.Time
	CleaningScheduled bool
	Water             ResourceStatus
	Beans             ResourceStatus
}

// RecipeSummary describes one catalog entry
type RecipeSummary struct {
	Name    string
	WaterML int
	BeansG  int
	Grind   string
}

// ListRecipesResponse lists the catalog contents
type ListRecipesResponse struct {
	Recipes []RecipeSummary
}
