package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
)

type recipeContext struct {
	recipe brewing.Recipe
	other  brewing.Recipe
	err    error
}

func (rc *recipeContext) reset() {
	rc.recipe = brewing.Recipe{}
	rc.other = brewing.Recipe{}
	rc.err = nil
}

func (rc *recipeContext) iCreateARecipeWith(name string, waterML, beansG int, grind string) error {
	level, err := brewing.ParseGrindLevel(grind)
	if err != nil {
		rc.err = err
		return nil
	}
	rc.recipe, rc.err = brewing.NewRecipe(name, waterML, beansG, level)
	return nil
}

func (rc *recipeContext) anotherRecipeWith(name string, waterML, beansG int, grind string) error {
	level, err := brewing.ParseGrindLevel(grind)
	if err != nil {
		return err
	}
	rc.other, err = brewing.NewRecipe(name, waterML, beansG, level)
	return err
}

func (rc *recipeContext) recipeCreationShouldSucceed() error {
	if rc.err != nil {
		return fmt.Errorf("unexpected error: %w", rc.err)
	}
	return nil
}

func (rc *recipeContext) recipeCreationShouldFail() error {
	if rc.err == nil {
		return fmt.Errorf("expected error but got none")
	}
	var recipeErr *brewing.InvalidRecipeError
	if !errors.As(rc.err, &recipeErr) {
		return fmt.Errorf("expected an invalid recipe error, got %T: %v", rc.err, rc.err)
	}
	return nil
}

func (rc *recipeContext) theRecipeNameShouldBe(expected string) error {
	if rc.recipe.Name() != expected {
		return fmt.Errorf("expected name %q but got %q", expected, rc.recipe.Name())
	}
	return nil
}

func (rc *recipeContext) theRecipeShouldRequireWaterAndBeans(waterML, beansG int) error {
	if rc.recipe.WaterML() != waterML {
		return fmt.Errorf("expected water %dml but got %dml", waterML, rc.recipe.WaterML())
	}
	if rc.recipe.BeansG() != beansG {
		return fmt.Errorf("expected beans %dg but got %dg", beansG, rc.recipe.BeansG())
	}
	return nil
}

func (rc *recipeContext) theTwoRecipesShouldBeEqual() error {
	if rc.recipe != rc.other {
		return fmt.Errorf("expected recipes to be equal: %s vs %s", rc.recipe, rc.other)
	}
	return nil
}

func (rc *recipeContext) theTwoRecipesShouldNotBeEqual() error {
	if rc.recipe == rc.other {
		return fmt.Errorf("expected recipes to differ: %s", rc.recipe)
	}
	return nil
}

// InitializeRecipeScenario registers recipe value object steps
func InitializeRecipeScenario(ctx *godog.ScenarioContext) {
	rc := &recipeContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		rc.reset()
		return ctx, nil
	})

	ctx.Step(`^I create a recipe "([^"]*)" with water (-?\d+), beans (-?\d+) and grind "([^"]*)"$`, rc.iCreateARecipeWith)
	ctx.Step(`^another recipe "([^"]*)" with water (\d+), beans (\d+) and grind "([^"]*)"$`, rc.anotherRecipeWith)
	ctx.Step(`^recipe creation should succeed$`, rc.recipeCreationShouldSucceed)
	ctx.Step(`^recipe creation should fail$`, rc.recipeCreationShouldFail)
	ctx.Step(`^the recipe name should be "([^"]*)"$`, rc.theRecipeNameShouldBe)
	ctx.Step(`^the recipe should require (\d+)ml of water and (\d+)g of beans$`, rc.theRecipeShouldRequireWaterAndBeans)
	ctx.Step(`^the two recipes should be equal$`, rc.theTwoRecipesShouldBeEqual)
	ctx.Step(`^the two recipes should not be equal$`, rc.theTwoRecipesShouldNotBeEqual)
}
