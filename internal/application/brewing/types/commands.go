package types

// BrewCoffeeCommand requests a brew of the currently selected recipe
type BrewCoffeeCommand struct{}

// SelectRecipeCommand selects a recipe from the catalog by name
type SelectRecipeCommand struct {
	Name string
}

// RefillResourceCommand refills one of the machine's containers
type RefillResourceCommand struct {
	Resource string // "water" or "beans"
	Amount   int
}

// CleanMachineCommand performs a cleaning now
type CleanMachineCommand struct{}

// ScheduleCleaningCommand marks cleaning as scheduled without performing it
type ScheduleCleaningCommand struct{}

// GetMachineStatusQuery reads the machine and resource state
type GetMachineStatusQuery struct{}

// ListRecipesQuery lists the catalog's recipes
type ListRecipesQuery struct{}
