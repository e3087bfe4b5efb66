package brewing

import (
	"fmt"
	"time"

	"github.com/andrescamacho/coffeemachine-go/internal/domain/shared"
)

// MachineState represents the machine's externally visible state.
// It always reflects the outcome of the most recent brew attempt or clean.
type MachineState string

const (
	StateIdle            MachineState = "IDLE"
	StateOutOfWater      MachineState = "OUT_OF_WATER"
	StateOutOfBeans      MachineState = "OUT_OF_BEANS"
	StateRecipeForbidden MachineState = "RECIPE_FORBIDDEN"
	StateNeedsCleaning   MachineState = "NEEDS_CLEANING"
	StateError           MachineState = "ERROR"
)

// machineState maps a non-OK brew decision onto the machine state mirror
func machineState(d BrewDecision) MachineState {
	switch d {
	case BrewOutOfWater:
		return StateOutOfWater
	case BrewOutOfBeans:
		return StateOutOfBeans
	case BrewRecipeForbidden:
		return StateRecipeForbidden
	case BrewNeedsCleaning:
		return StateNeedsCleaning
	default:
		return StateError
	}
}

// Machine orchestrates the two resource containers and the three decision
// policies. It sequences recipe selection, brew execution (policy check,
// consumption, maintenance update, cleaning re-evaluation) and refill
// delegation.
//
// The machine exclusively owns its containers; policies hold no mutable
// state of their own. All operations are synchronous, single-threaded calls.
//
// Invariants:
// - dirtyCount only changes via a successful brew (+1) or Clean (reset to 0)
// - a rejected brew never mutates resources or dirtyCount
type Machine struct {
	water          *ResourceContainer
	beans          *ResourceContainer
	brewPolicy     BrewPolicy
	cleaningPolicy CleaningPolicy
	refillPolicy   RefillPolicy
	clock          shared.Clock

	state             MachineState
	activeRecipe      *Recipe
	dirtyCount        int
	lastCleaned       *time.Time
	cleaningScheduled bool
}

// NewMachine creates a machine with its dependencies injected.
//
// water, beans, brewPolicy and cleaningPolicy are required. A nil
// refillPolicy falls back to the capping strategy, which is the default
// refill behavior; a nil clock falls back to the system clock.
func NewMachine(
	water, beans *ResourceContainer,
	brewPolicy BrewPolicy,
	cleaningPolicy CleaningPolicy,
	refillPolicy RefillPolicy,
	clock shared.Clock,
) (*Machine, error) {
	if water == nil || beans == nil {
		return nil, NewInvalidConfigError("machine requires both a water tank and a bean container")
	}
	if brewPolicy == nil {
		return nil, NewInvalidConfigError("machine requires a brew policy")
	}
	if cleaningPolicy == nil {
		return nil, NewInvalidConfigError("machine requires a cleaning policy")
	}
	if refillPolicy == nil {
		refillPolicy = NewCapRefillPolicy()
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &Machine{
		water:          water,
		beans:          beans,
		brewPolicy:     brewPolicy,
		cleaningPolicy: cleaningPolicy,
		refillPolicy:   refillPolicy,
		clock:          clock,
		state:          StateIdle,
	}, nil
}

// SelectRecipe sets the active recipe. Any valid Recipe value is accepted.
func (m *Machine) SelectRecipe(recipe Recipe) {
	m.activeRecipe = &recipe
}

// Brew attempts to brew the active recipe.
//
// Returns ErrNoRecipeSelected if no recipe is selected. Otherwise the brew
// policy is consulted with the current resource levels and maintenance
// state. A decision other than OK mirrors into the machine state and is
// returned without touching resources or the dirty count. On OK the required
// resources are consumed, the dirty count is incremented and the cleaning
// policy decides whether the machine stays IDLE, schedules a cleaning or
// demands one immediately.
func (m *Machine) Brew() (BrewDecision, error) {
	if m.activeRecipe == nil {
		return BrewError, ErrNoRecipeSelected
	}

	recipe := *m.activeRecipe

	decision := m.brewPolicy.CanBrew(
		recipe,
		m.water.CurrentLevel(),
		m.beans.CurrentLevel(),
		MaintenanceState{DirtyCount: m.dirtyCount},
	)

	if decision != BrewOK {
		m.state = machineState(decision)
		return decision, nil
	}

	// The policy validated sufficiency, so consumption is expected to
	// succeed; a failure here means a programming error.
	if recipe.RequiresWater() {
		if err := m.water.Consume(recipe.WaterML()); err != nil {
			m.state = StateError
			return BrewError, fmt.Errorf("water consumption failed after OK decision: %w", err)
		}
	}
	if recipe.RequiresBeans() {
		if err := m.beans.Consume(recipe.BeansG()); err != nil {
			m.state = StateError
			return BrewError, fmt.Errorf("bean consumption failed after OK decision: %w", err)
		}
	}

	m.dirtyCount++

	switch m.cleaningPolicy.Evaluate(m.dirtyCount, m.lastCleaned) {
	case CleaningImmediate:
		m.state = StateNeedsCleaning
	case CleaningSchedule:
		m.cleaningScheduled = true
		m.state = StateIdle
	default:
		m.state = StateIdle
	}

	return BrewOK, nil
}

// Clean performs a cleaning now: the dirty count is reset, the clean is
// timestamped, the scheduled flag is cleared and the machine returns to
// IDLE. Clean always succeeds.
func (m *Machine) Clean() {
	now := m.clock.Now()
	m.dirtyCount = 0
	m.lastCleaned = &now
	m.cleaningScheduled = false
	m.state = StateIdle
}

// ScheduleCleaning marks cleaning as scheduled without touching the state.
// The marker is independent of the brew flow.
func (m *Machine) ScheduleCleaning() {
	m.cleaningScheduled = true
}

// RefillWater refills the water tank through the machine's refill policy
func (m *Machine) RefillWater(amount int) (RefillResult, error) {
	return m.refill(m.water, amount)
}

// RefillBeans refills the bean container through the machine's refill policy
func (m *Machine) RefillBeans(amount int) (RefillResult, error) {
	return m.refill(m.beans, amount)
}

func (m *Machine) refill(container *ResourceContainer, amount int) (RefillResult, error) {
	newLevel, result, err := m.refillPolicy.OnRefill(container.CurrentLevel(), amount, container.MaximumLevel())
	if err != nil {
		return result, err
	}
	if result == RefillOverflowError {
		// Strict policy rejection: container level stays unchanged
		return result, nil
	}

	container.setLevel(newLevel)
	return result, nil
}

// State returns the current machine state
func (m *Machine) State() MachineState {
	return m.state
}

// ActiveRecipe returns the selected recipe, or nil if none is selected
func (m *Machine) ActiveRecipe() *Recipe {
	return m.activeRecipe
}

// DirtyCount returns the number of successful brews since the last clean
func (m *Machine) DirtyCount() int {
	return m.dirtyCount
}

// LastCleaned returns when the machine was last cleaned, or nil if never
func (m *Machine) LastCleaned() *time.Time {
	return m.lastCleaned
}

// CleaningScheduled reports whether a cleaning has been scheduled
func (m *Machine) CleaningScheduled() bool {
	return m.cleaningScheduled
}

// Water returns the water tank for status reporting
func (m *Machine) Water() *ResourceContainer {
	return m.water
}

// Beans returns the bean container for status reporting
func (m *Machine) Beans() *ResourceContainer {
	return m.beans
}
