package config

import "time"

// SetDefaults fills in default values for any missing configuration.
// The machine defaults describe a small household machine: a 500ml tank starting at
// 150ml, a 500g hopper starting at 50g, cleaning after 5 brews with a
// schedule hint at 3 and a hard stop at 6, and a weekly time-based clean.
func SetDefaults(cfg *Config) {
	if cfg.Machine.WaterCapacityML == 0 {
		cfg.Machine.WaterCapacityML = 500
	}
	if cfg.Machine.WaterInitialML == 0 {
		cfg.Machine.WaterInitialML = 150
	}
	if cfg.Machine.BeanCapacityG == 0 {
		cfg.Machine.BeanCapacityG = 500
	}
	if cfg.Machine.BeanInitialG == 0 {
		cfg.Machine.BeanInitialG = 50
	}
	if cfg.Machine.CleanThreshold == 0 {
		cfg.Machine.CleanThreshold = 5
	}
	if cfg.Machine.ScheduleThreshold == 0 {
		cfg.Machine.ScheduleThreshold = 3
	}
	if cfg.Machine.ImmediateThreshold == 0 {
		cfg.Machine.ImmediateThreshold = 6
	}
	if cfg.Machine.MaxTimeBetweenCleans == 0 {
		cfg.Machine.MaxTimeBetweenCleans = 7 * 24 * time.Hour
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if len(cfg.Recipes) == 0 {
		cfg.Recipes = DefaultRecipes()
	}
}

// DefaultRecipes returns the built-in recipe catalog entries
func DefaultRecipes() []RecipeConfig {
	return []RecipeConfig{
		{Name: "espresso", WaterML: 30, BeansG: 8, Grind: "FINE"},
		{Name: "lungo", WaterML: 60, BeansG: 8, Grind: "FINE"},
		{Name: "americano", WaterML: 120, BeansG: 8, Grind: "MEDIUM"},
		{Name: "ristretto", WaterML: 20, BeansG: 8, Grind: "FINE"},
	}
}
