package brewing

import "time"

// MaintenanceState is the maintenance snapshot handed to a BrewPolicy
type MaintenanceState struct {
	DirtyCount int
}

// BrewPolicy decides whether a brew may proceed given a recipe, the
// available resource levels and the machine's maintenance state.
//
// Implementations must be stateless evaluators: they never mutate their
// inputs and a single instance is safe to share across many machines.
type BrewPolicy interface {
	CanBrew(recipe Recipe, waterAvailableML, beansAvailableG int, maintenance MaintenanceState) BrewDecision
}

// CleaningPolicy decides what cleaning action is required given the number
// of brews since the last clean and when that clean happened (nil if never).
type CleaningPolicy interface {
	Evaluate(dirtyCount int, lastCleaned *time.Time) CleaningAction
}

// RefillPolicy computes the level a container should end up at after a
// refill. OnRefill never mutates anything; the caller applies the returned
// level. A non-positive amount is rejected with an InvalidOperationError.
type RefillPolicy interface {
	OnRefill(currentLevel, refillAmount, maximum int) (int, RefillResult, error)
}

// RecipeCatalog supplies named Recipe instances to callers of the machine
type RecipeCatalog interface {
	Get(name string) (Recipe, error)
	List() []Recipe
}
