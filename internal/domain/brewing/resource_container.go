package brewing

import "fmt"

// Resource identifies what a container holds
type Resource string

const (
	ResourceWater Resource = "water"
	ResourceBeans Resource = "beans"
)

// ResourceContainer is a bounded reservoir of a single resource (water in
// milliliters, beans in grams). It is responsible only for:
// - storing the current and maximum level,
// - validating configuration and operations,
// - providing domain queries about its fill state.
//
// Invariants:
// - 0 <= current <= maximum
// - maximum > 0
type ResourceContainer struct {
	resource Resource
	maximum  int
	current  int
}

// NewResourceContainer creates a container with validation.
// maximum must be greater than zero and initial must satisfy
// 0 <= initial <= maximum, otherwise an InvalidConfigError is returned.
func NewResourceContainer(resource Resource, maximum, initial int) (*ResourceContainer, error) {
	if maximum <= 0 {
		return nil, NewInvalidConfigError(fmt.Sprintf("%s container maximum must be greater than zero", resource))
	}
	if initial < 0 {
		return nil, NewInvalidConfigError(fmt.Sprintf("%s container initial level cannot be less than zero", resource))
	}
	if initial > maximum {
		return nil, NewInvalidConfigError(fmt.Sprintf("%s container initial level cannot exceed maximum", resource))
	}

	return &ResourceContainer{
		resource: resource,
		maximum:  maximum,
		current:  initial,
	}, nil
}

// NewWaterTank creates the water reservoir (milliliters)
func NewWaterTank(maximumML, initialML int) (*ResourceContainer, error) {
	return NewResourceContainer(ResourceWater, maximumML, initialML)
}

// NewBeanContainer creates the bean hopper (grams)
func NewBeanContainer(maximumG, initialG int) (*ResourceContainer, error) {
	return NewResourceContainer(ResourceBeans, maximumG, initialG)
}

// Resource returns what this container holds
func (c *ResourceContainer) Resource() Resource {
	return c.resource
}

// CurrentLevel returns the current fill level
func (c *ResourceContainer) CurrentLevel() int {
	return c.current
}

// MaximumLevel returns the container capacity
func (c *ResourceContainer) MaximumLevel() int {
	return c.maximum
}

// MissingCapacity returns the amount missing to reach full capacity
func (c *ResourceContainer) MissingCapacity() int {
	return c.maximum - c.current
}

// FulfillmentRatio returns the fill ratio as a float in [0.0, 1.0]
func (c *ResourceContainer) FulfillmentRatio() float64 {
	return float64(c.current) / float64(c.maximum)
}

// IsEmpty reports whether the container holds nothing
func (c *ResourceContainer) IsEmpty() bool {
	return c.current == 0
}

// IsFull reports whether the container is at capacity
func (c *ResourceContainer) IsFull() bool {
	return c.current == c.maximum
}

// Consume removes amount from the container.
//
// The operation is atomic: if there is not enough of the resource the state
// is not modified and an InsufficientResourceError is returned. A
// non-positive amount is a caller mistake and yields an InvalidOperationError.
func (c *ResourceContainer) Consume(amount int) error {
	if amount <= 0 {
		return NewInvalidOperationError(fmt.Sprintf("%s consumption amount must be greater than zero", c.resource))
	}

	if c.current-amount < 0 {
		return NewInsufficientResourceError(c.resource, amount, c.current)
	}

	c.current -= amount
	return nil
}

// Refill adds amount to the container using the forgiving capping semantics:
// a refill past capacity clamps the level at maximum and reports
// RefillNowFull instead of erroring. A non-positive amount yields an
// InvalidOperationError.
func (c *ResourceContainer) Refill(amount int) (RefillResult, error) {
	if amount <= 0 {
		return RefillStillNotFull, NewInvalidOperationError(fmt.Sprintf("%s refill amount must be greater than zero", c.resource))
	}

	newLevel := c.current + amount
	if newLevel >= c.maximum {
		c.current = c.maximum
		return RefillNowFull, nil
	}

	c.current = newLevel
	return RefillStillNotFull, nil
}

// setLevel applies a level computed by a RefillPolicy. Callers within the
// package must guarantee 0 <= level <= maximum; values outside are clamped
// to preserve the container invariant.
func (c *ResourceContainer) setLevel(level int) {
	if level < 0 {
		level = 0
	}
	if level > c.maximum {
		level = c.maximum
	}
	c.current = level
}

func (c *ResourceContainer) String() string {
	return fmt.Sprintf("ResourceContainer(%s %d/%d)", c.resource, c.current, c.maximum)
}
