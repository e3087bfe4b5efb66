package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Machine MachineConfig  `mapstructure:"machine"`
	Logging LoggingConfig  `mapstructure:"logging"`
	Recipes []RecipeConfig `mapstructure:"recipes" validate:"dive"`
}

// MachineConfig configures the containers and policies
type MachineConfig struct {
	WaterCapacityML int `mapstructure:"water_capacity_ml" validate:"gt=0"`
	WaterInitialML  int `mapstructure:"water_initial_ml" validate:"gte=0,ltefield=WaterCapacityML"`
	BeanCapacityG   int `mapstructure:"bean_capacity_g" validate:"gt=0"`
	BeanInitialG    int `mapstructure:"bean_initial_g" validate:"gte=0,ltefield=BeanCapacityG"`

	CleanThreshold     int  `mapstructure:"clean_threshold" validate:"gte=0"`
	AllowEmptyRecipes  bool `mapstructure:"allow_empty_recipes"`
	ScheduleThreshold  int  `mapstructure:"schedule_threshold" validate:"gte=0"`
	ImmediateThreshold int  `mapstructure:"immediate_threshold" validate:"gtefield=ScheduleThreshold"`

	// Zero disables the time-based cleaning rule
	MaxTimeBetweenCleans time.Duration `mapstructure:"max_time_between_cleans" validate:"gte=0"`

	// StrictRefill selects the strict refill strategy instead of capping
	StrictRefill bool `mapstructure:"strict_refill"`
}

// LoggingConfig configures the CLI logger
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// RecipeConfig is one catalog entry
type RecipeConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	WaterML int    `mapstructure:"water_ml" validate:"gte=0,lte=2000"`
	BeansG  int    `mapstructure:"beans_g" validate:"gte=0,lte=500"`
	Grind   string `mapstructure:"grind" validate:"omitempty,oneof=FINE MEDIUM COARSE"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (config.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/coffeemachine")
	}

	v.SetEnvPrefix("COFFEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional - don't error if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadConfigOrDefault loads configuration or returns a default config on error
func LoadConfigOrDefault(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		defaultCfg := &Config{}
		SetDefaults(defaultCfg)
		return defaultCfg
	}
	return cfg
}
