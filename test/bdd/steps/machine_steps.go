package steps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
	"github.com/andrescamacho/coffeemachine-go/internal/domain/shared"
)

type machineContext struct {
	machine  *brewing.Machine
	clock    *shared.MockClock
	decision brewing.BrewDecision
	brewErr  error
}

func (mc *machineContext) reset() {
	mc.machine = nil
	mc.clock = shared.NewMockClock(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	mc.decision = brewing.BrewOK
	mc.brewErr = nil
}

func (mc *machineContext) buildMachine(waterMax, waterCur, beanMax, beanCur, cleanThreshold, scheduleThreshold, immediateThreshold int, maxBetween time.Duration) error {
	water, err := brewing.NewWaterTank(waterMax, waterCur)
	if err != nil {
		return err
	}
	beans, err := brewing.NewBeanContainer(beanMax, beanCur)
	if err != nil {
		return err
	}
	brewPolicy, err := brewing.NewDefaultBrewPolicy(cleanThreshold, false)
	if err != nil {
		return err
	}
	cleaningPolicy, err := brewing.NewDefaultCleaningPolicy(scheduleThreshold, immediateThreshold, maxBetween, mc.clock)
	if err != nil {
		return err
	}
	mc.machine, err = brewing.NewMachine(water, beans, brewPolicy, cleaningPolicy, nil, mc.clock)
	return err
}

func (mc *machineContext) aMachineWithTheDefaultSetup() error {
	return mc.buildMachine(500, 150, 500, 50, 5, 3, 6, 0)
}

func (mc *machineContext) aMachineWithWaterAndBeans(waterCur, beanCur int) error {
	return mc.buildMachine(500, waterCur, 500, beanCur, 5, 3, 6, 0)
}

func (mc *machineContext) aMachineWithAWeeklyCleaningRule() error {
	return mc.buildMachine(500, 500, 500, 500, 100, 50, 60, 7*24*time.Hour)
}

func (mc *machineContext) theRecipeIsSelected(name, grind string, waterML, beansG int) error {
	level, err := brewing.ParseGrindLevel(grind)
	if err != nil {
		return err
	}
	recipe, err := brewing.NewRecipe(name, waterML, beansG, level)
	if err != nil {
		return err
	}
	mc.machine.SelectRecipe(recipe)
	return nil
}

func (mc *machineContext) iBrew() error {
	mc.decision, mc.brewErr = mc.machine.Brew()
	return nil
}

func (mc *machineContext) iBrewTimes(count int) error {
	for i := 0; i < count; i++ {
		mc.decision, mc.brewErr = mc.machine.Brew()
		if mc.brewErr != nil {
			return mc.brewErr
		}
	}
	return nil
}

func (mc *machineContext) theMachineIsCleaned() error {
	mc.machine.Clean()
	return nil
}

func (mc *machineContext) daysPass(days int) error {
	mc.clock.Advance(time.Duration(days) * 24 * time.Hour)
	return nil
}

func (mc *machineContext) theBrewDecisionShouldBe(expected string) error {
	if mc.brewErr != nil {
		return fmt.Errorf("unexpected error: %w", mc.brewErr)
	}
	if mc.decision.Name() != expected {
		return fmt.Errorf("expected decision %s but got %s", expected, mc.decision.Name())
	}
	return nil
}

func (mc *machineContext) brewingShouldFailBecauseNoRecipeIsSelected() error {
	if !errors.Is(mc.brewErr, brewing.ErrNoRecipeSelected) {
		return fmt.Errorf("expected no-recipe-selected error, got %v", mc.brewErr)
	}
	return nil
}

func (mc *machineContext) theMachineStateShouldBe(expected string) error {
	if string(mc.machine.State()) != expected {
		return fmt.Errorf("expected state %s but got %s", expected, mc.machine.State())
	}
	return nil
}

func (mc *machineContext) theWaterLevelShouldBe(expected int) error {
	if mc.machine.Water().CurrentLevel() != expected {
		return fmt.Errorf("expected water level %d but got %d", expected, mc.machine.Water().CurrentLevel())
	}
	return nil
}

func (mc *machineContext) theBeanLevelShouldBe(expected int) error {
	if mc.machine.Beans().CurrentLevel() != expected {
		return fmt.Errorf("expected bean level %d but got %d", expected, mc.machine.Beans().CurrentLevel())
	}
	return nil
}

func (mc *machineContext) theDirtyCountShouldBe(expected int) error {
	if mc.machine.DirtyCount() != expected {
		return fmt.Errorf("expected dirty count %d but got %d", expected, mc.machine.DirtyCount())
	}
	return nil
}

func (mc *machineContext) cleaningShouldBeScheduled(negation string) error {
	want := negation == ""
	if mc.machine.CleaningScheduled() != want {
		return fmt.Errorf("expected cleaning scheduled=%v but got %v", want, mc.machine.CleaningScheduled())
	}
	return nil
}

// InitializeMachineScenario registers machine orchestration steps
func InitializeMachineScenario(ctx *godog.ScenarioContext) {
	mc := &machineContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		mc.reset()
		return ctx, nil
	})

	ctx.Step(`^a machine with the default setup$`, mc.aMachineWithTheDefaultSetup)
	ctx.Step(`^a machine with (\d+)ml of water and (\d+)g of beans$`, mc.aMachineWithWaterAndBeans)
	ctx.Step(`^a machine with a weekly cleaning rule$`, mc.aMachineWithAWeeklyCleaningRule)
	ctx.Step(`^the recipe "([^"]*)" with grind "([^"]*)", water (\d+) and beans (\d+) is selected$`, mc.theRecipeIsSelected)
	ctx.Step(`^I brew$`, mc.iBrew)
	ctx.Step(`^I brew (\d+) times$`, mc.iBrewTimes)
	ctx.Step(`^the machine is cleaned$`, mc.theMachineIsCleaned)
	ctx.Step(`^(\d+) days pass$`, mc.daysPass)
	ctx.Step(`^the brew decision should be "([^"]*)"$`, mc.theBrewDecisionShouldBe)
	ctx.Step(`^brewing should fail because no recipe is selected$`, mc.brewingShouldFailBecauseNoRecipeIsSelected)
	ctx.Step(`^the machine state should be "([^"]*)"$`, mc.theMachineStateShouldBe)
	ctx.Step(`^the water level should be (\d+)$`, mc.theWaterLevelShouldBe)
	ctx.Step(`^the bean level should be (\d+)$`, mc.theBeanLevelShouldBe)
	ctx.Step(`^the dirty count should be (\d+)$`, mc.theDirtyCountShouldBe)
	ctx.Step(`^cleaning should (not )?be scheduled$`, func(negation string) error {
		return mc.cleaningShouldBeScheduled(negation)
	})
}
