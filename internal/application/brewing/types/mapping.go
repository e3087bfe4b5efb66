package types

import "github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"

// ResourceStatusFrom snapshots a container into a ResourceStatus
func ResourceStatusFrom(c *brewing.ResourceContainer) ResourceStatus {
	return ResourceStatus{
		Resource:         string(c.Resource()),
		CurrentLevel:     c.CurrentLevel(),
		MaximumLevel:     c.MaximumLevel(),
		MissingCapacity:  c.MissingCapacity(),
		FulfillmentRatio: c.FulfillmentRatio(),
		Empty:            c.IsEmpty(),
		Full:             c.IsFull(),
	}
}

// RecipeSummaryFrom maps a recipe into its list representation
func RecipeSummaryFrom(r brewing.Recipe) RecipeSummary {
	return RecipeSummary{
		Name:    r.Name(),
		WaterML: r.WaterML(),
		BeansG:  r.BeansG(),
		Grind:   r.Grind().Name(),
	}
}
