package brewing

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// GrindLevel represents the optional grind setting of a recipe
type GrindLevel int

const (
	// GrindNone means the recipe does not specify a grind
	GrindNone GrindLevel = iota
	GrindFine
	GrindMedium
	GrindCoarse
)

var grindLevelNames = map[GrindLevel]string{
	GrindFine:   "FINE",
	GrindMedium: "MEDIUM",
	GrindCoarse: "COARSE",
}

// Name returns the grind level name, or the empty string for GrindNone
func (g GrindLevel) Name() string {
	return grindLevelNames[g]
}

func (g GrindLevel) String() string {
	if g == GrindNone {
		return "NONE"
	}
	return g.Name()
}

func (g GrindLevel) isValid() bool {
	if g == GrindNone {
		return true
	}
	_, ok := grindLevelNames[g]
	return ok
}

// ParseGrindLevel parses a grind level name. The empty string parses to
// GrindNone so optional config fields round-trip cleanly.
func ParseGrindLevel(name string) (GrindLevel, error) {
	if strings.TrimSpace(name) == "" {
		return GrindNone, nil
	}
	for level, levelName := range grindLevelNames {
		if levelName == strings.ToUpper(strings.TrimSpace(name)) {
			return level, nil
		}
	}
	return GrindNone, NewInvalidRecipeError(fmt.Sprintf("invalid grind level: %s", name))
}

// Bounds for recipe resource requirements
const (
	MaxRecipeWaterML = 2000
	MaxRecipeBeansG  = 500
)

// recipeParams carries constructor arguments through struct validation
type recipeParams struct {
	Name    string `validate:"required"`
	WaterML int    `validate:"gte=0,lte=2000"`
	BeansG  int    `validate:"gte=0,lte=500"`
}

var recipeValidator = validator.New()

// Recipe is an immutable value object describing a drink's resource
// requirements. Two recipes with identical field values are equal and
// interchangeable.
//
// Units:
// - water: milliliters
// - beans: grams
type Recipe struct {
	name    string
	waterML int
	beansG  int
	grind   GrindLevel
}

// NewRecipe creates a fully validated recipe.
//
// name must be non-empty after trimming, waterML must be in
// [0, MaxRecipeWaterML], beansG in [0, MaxRecipeBeansG], and grind one of the
// enumerated levels (or GrindNone). Any violation returns an
// InvalidRecipeError and no partial object.
func NewRecipe(name string, waterML, beansG int, grind GrindLevel) (Recipe, error) {
	params := recipeParams{
		Name:    strings.TrimSpace(name),
		WaterML: waterML,
		BeansG:  beansG,
	}

	if err := recipeValidator.Struct(params); err != nil {
		return Recipe{}, NewInvalidRecipeError(formatRecipeValidationError(err))
	}

	if !grind.isValid() {
		return Recipe{}, NewInvalidRecipeError(fmt.Sprintf("grind must be one of FINE, MEDIUM, COARSE (got %d)", grind))
	}

	return Recipe{
		name:    name,
		waterML: waterML,
		beansG:  beansG,
		grind:   grind,
	}, nil
}

func formatRecipeValidationError(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		switch e.Field() {
		case "Name":
			messages = append(messages, "name must be a non-empty string")
		case "WaterML":
			messages = append(messages, fmt.Sprintf("water_ml must be in range [0, %d]", MaxRecipeWaterML))
		case "BeansG":
			messages = append(messages, fmt.Sprintf("beans_g must be in range [0, %d]", MaxRecipeBeansG))
		default:
			messages = append(messages, fmt.Sprintf("field %s failed validation: %s", e.Field(), e.Tag()))
		}
	}
	return strings.Join(messages, "; ")
}

// Name returns the recipe name
func (r Recipe) Name() string {
	return r.name
}

// WaterML returns the required water in milliliters
func (r Recipe) WaterML() int {
	return r.waterML
}

// BeansG returns the required beans in grams
func (r Recipe) BeansG() int {
	return r.beansG
}

// Grind returns the grind level (GrindNone if unspecified)
func (r Recipe) Grind() GrindLevel {
	return r.grind
}

// RequiresWater reports whether the recipe needs any water
func (r Recipe) RequiresWater() bool {
	return r.waterML > 0
}

// RequiresBeans reports whether the recipe needs any beans
func (r Recipe) RequiresBeans() bool {
	return r.beansG > 0
}

// ToMapping returns a serializable field name to value mapping.
// An unspecified grind is rendered as nil.
func (r Recipe) ToMapping() map[string]interface{} {
	var grind interface{}
	if r.grind != GrindNone {
		grind = r.grind.Name()
	}

	return map[string]interface{}{
		"name":     r.name,
		"water_ml": r.waterML,
		"beans_g":  r.beansG,
		"grind":    grind,
	}
}

func (r Recipe) String() string {
	return fmt.Sprintf("Recipe(name=%q, water_ml=%d, beans_g=%d, grind=%s)", r.name, r.waterML, r.beansG, r.grind)
}
