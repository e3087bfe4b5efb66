package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
)

type containerContext struct {
	container    *brewing.ResourceContainer
	refillPolicy brewing.RefillPolicy
	refillResult brewing.RefillResult
	newLevel     int
	err          error
}

func (cc *containerContext) reset() {
	cc.container = nil
	cc.refillPolicy = brewing.NewCapRefillPolicy()
	cc.refillResult = brewing.RefillStillNotFull
	cc.newLevel = 0
	cc.err = nil
}

func (cc *containerContext) aWaterTankWithMaximumAndCurrent(maximum, current int) error {
	cc.container, cc.err = brewing.NewWaterTank(maximum, current)
	return cc.err
}

func (cc *containerContext) aBeanContainerWithMaximumAndCurrent(maximum, current int) error {
	cc.container, cc.err = brewing.NewBeanContainer(maximum, current)
	return cc.err
}

func (cc *containerContext) iAttemptToCreateAWaterTankWithMaximumAndCurrent(maximum, current int) error {
	cc.container, cc.err = brewing.NewWaterTank(maximum, current)
	return nil
}

func (cc *containerContext) theCappingRefillStrategyIsInUse() error {
	cc.refillPolicy = brewing.NewCapRefillPolicy()
	return nil
}

func (cc *containerContext) theStrictRefillStrategyIsInUse() error {
	cc.refillPolicy = brewing.NewStrictRefillPolicy()
	return nil
}

func (cc *containerContext) iRefillTheContainerWith(amount int) error {
	if cc.container == nil {
		return fmt.Errorf("no container in scenario")
	}
	cc.newLevel, cc.refillResult, cc.err = cc.refillPolicy.OnRefill(
		cc.container.CurrentLevel(), amount, cc.container.MaximumLevel())
	return nil
}

func (cc *containerContext) iConsumeFromTheContainer(amount int) error {
	if cc.container == nil {
		return fmt.Errorf("no container in scenario")
	}
	cc.err = cc.container.Consume(amount)
	return nil
}

func (cc *containerContext) theRefillResultShouldBe(expected string) error {
	if cc.err != nil {
		return fmt.Errorf("unexpected error: %w", cc.err)
	}
	if cc.refillResult.Name() != expected {
		return fmt.Errorf("expected refill result %s but got %s", expected, cc.refillResult.Name())
	}
	return nil
}

func (cc *containerContext) theResultingLevelShouldBe(expected int) error {
	if cc.newLevel != expected {
		return fmt.Errorf("expected level %d but got %d", expected, cc.newLevel)
	}
	return nil
}

func (cc *containerContext) theContainerLevelShouldBe(expected int) error {
	if cc.container.CurrentLevel() != expected {
		return fmt.Errorf("expected container level %d but got %d", expected, cc.container.CurrentLevel())
	}
	return nil
}

func (cc *containerContext) theContainerOperationShouldFail() error {
	if cc.err == nil {
		return fmt.Errorf("expected error but got none")
	}
	return nil
}

func (cc *containerContext) containerCreationShouldFail() error {
	if cc.err == nil {
		return fmt.Errorf("expected creation error but got none")
	}
	return nil
}

func (cc *containerContext) theContainerShouldReportEmpty(expected string) error {
	want := expected == "empty"
	if cc.container.IsEmpty() != want {
		return fmt.Errorf("expected IsEmpty=%v but got %v", want, cc.container.IsEmpty())
	}
	return nil
}

func (cc *containerContext) theContainerShouldReportFull() error {
	if !cc.container.IsFull() {
		return fmt.Errorf("expected container to be full at %d/%d",
			cc.container.CurrentLevel(), cc.container.MaximumLevel())
	}
	return nil
}

func (cc *containerContext) theMissingCapacityShouldBe(expected int) error {
	if cc.container.MissingCapacity() != expected {
		return fmt.Errorf("expected missing capacity %d but got %d", expected, cc.container.MissingCapacity())
	}
	return nil
}

// InitializeContainerScenario registers container and refill strategy steps
func InitializeContainerScenario(ctx *godog.ScenarioContext) {
	cc := &containerContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	ctx.Step(`^a water tank with maximum (\d+) and current level (\d+)$`, cc.aWaterTankWithMaximumAndCurrent)
	ctx.Step(`^a bean container with maximum (\d+) and current level (\d+)$`, cc.aBeanContainerWithMaximumAndCurrent)
	ctx.Step(`^I attempt to create a water tank with maximum (-?\d+) and current level (-?\d+)$`, cc.iAttemptToCreateAWaterTankWithMaximumAndCurrent)
	ctx.Step(`^the capping refill strategy is in use$`, cc.theCappingRefillStrategyIsInUse)
	ctx.Step(`^the strict refill strategy is in use$`, cc.theStrictRefillStrategyIsInUse)
	ctx.Step(`^I refill the container with (-?\d+)$`, cc.iRefillTheContainerWith)
	ctx.Step(`^I consume (-?\d+) from the container$`, cc.iConsumeFromTheContainer)
	ctx.Step(`^the refill result should be "([^"]*)"$`, cc.theRefillResultShouldBe)
	ctx.Step(`^the resulting level should be (\d+)$`, cc.theResultingLevelShouldBe)
	ctx.Step(`^the container level should be (\d+)$`, cc.theContainerLevelShouldBe)
	ctx.Step(`^the container operation should fail$`, cc.theContainerOperationShouldFail)
	ctx.Step(`^container creation should fail$`, cc.containerCreationShouldFail)
	ctx.Step(`^the container should report (empty|not empty)$`, cc.theContainerShouldReportEmpty)
	ctx.Step(`^the container should report full$`, cc.theContainerShouldReportFull)
	ctx.Step(`^the missing capacity should be (\d+)$`, cc.theMissingCapacityShouldBe)
}
