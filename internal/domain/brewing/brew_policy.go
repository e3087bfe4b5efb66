package brewing

// BrewDecision is the outcome of a brew policy evaluation
type BrewDecision int

const (
	BrewOK BrewDecision = iota
	BrewOutOfWater
	BrewOutOfBeans
	BrewRecipeForbidden
	BrewNeedsCleaning
	BrewError
)

var brewDecisionNames = map[BrewDecision]string{
	BrewOK:              "OK",
	BrewOutOfWater:      "OUT_OF_WATER",
	BrewOutOfBeans:      "OUT_OF_BEANS",
	BrewRecipeForbidden: "RECIPE_FORBIDDEN",
	BrewNeedsCleaning:   "NEEDS_CLEANING",
	BrewError:           "ERROR",
}

// Name returns the decision name
func (d BrewDecision) Name() string {
	if name, ok := brewDecisionNames[d]; ok {
		return name
	}
	return "UNKNOWN"
}

func (d BrewDecision) String() string {
	return d.Name()
}

// DefaultBrewPolicy is the standard brew decision evaluator.
//
// Checks run in a fixed order, first match wins:
//  1. a recipe requiring neither water nor beans is OK only when
//     allowEmptyRecipes is set, otherwise RECIPE_FORBIDDEN
//  2. insufficient water -> OUT_OF_WATER
//  3. insufficient beans -> OUT_OF_BEANS
//  4. dirty count at or past cleanThreshold -> NEEDS_CLEANING
//  5. otherwise OK
//
// The water check always precedes the beans check regardless of which
// resource is scarcer.
type DefaultBrewPolicy struct {
	cleanThreshold    int
	allowEmptyRecipes bool
}

// NewDefaultBrewPolicy creates the default brew policy.
// cleanThreshold must be non-negative, else an InvalidConfigError is returned.
func NewDefaultBrewPolicy(cleanThreshold int, allowEmptyRecipes bool) (*DefaultBrewPolicy, error) {
	if cleanThreshold < 0 {
		return nil, NewInvalidConfigError("clean threshold must be non-negative")
	}

	return &DefaultBrewPolicy{
		cleanThreshold:    cleanThreshold,
		allowEmptyRecipes: allowEmptyRecipes,
	}, nil
}

// CleanThreshold returns the configured dirty-count threshold
func (p *DefaultBrewPolicy) CleanThreshold() int {
	return p.cleanThreshold
}

// CanBrew evaluates whether the recipe can be brewed with the given resources
func (p *DefaultBrewPolicy) CanBrew(recipe Recipe, waterAvailableML, beansAvailableG int, maintenance MaintenanceState) BrewDecision {
	requiresWater := recipe.RequiresWater()
	requiresBeans := recipe.RequiresBeans()

	if !requiresWater && !requiresBeans {
		if p.allowEmptyRecipes {
			return BrewOK
		}
		return BrewRecipeForbidden
	}

	if requiresWater && waterAvailableML < recipe.WaterML() {
		return BrewOutOfWater
	}

	if requiresBeans && beansAvailableG < recipe.BeansG() {
		return BrewOutOfBeans
	}

	if maintenance.DirtyCount >= p.cleanThreshold {
		return BrewNeedsCleaning
	}

	return BrewOK
}
