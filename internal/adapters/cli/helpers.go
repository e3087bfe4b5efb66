package cli

import (
	"context"
	"fmt"
	"os"

	brewingCmd "github.com/andrescamacho/coffeemachine-go/internal/application/brewing/commands"
	brewingQuery "github.com/andrescamacho/coffeemachine-go/internal/application/brewing/queries"
	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/types"
	"github.com/andrescamacho/coffeemachine-go/internal/application/common"
	"github.com/andrescamacho/coffeemachine-go/internal/adapters/catalog"
	"github.com/andrescamacho/coffeemachine-go/internal/domain/brewing"
	"github.com/andrescamacho/coffeemachine-go/internal/infrastructure/config"
)

// App bundles the wired machine, catalog and mediator for CLI commands
type App struct {
	Config   *config.Config
	Machine  *brewing.Machine
	Catalog  brewing.RecipeCatalog
	Mediator common.Mediator
}

// BuildApp wires containers, policies, machine, catalog and all handlers
// from the given configuration
func BuildApp(cfg *config.Config) (*App, error) {
	water, err := brewing.NewWaterTank(cfg.Machine.WaterCapacityML, cfg.Machine.WaterInitialML)
	if err != nil {
		return nil, fmt.Errorf("water tank: %w", err)
	}

	beans, err := brewing.NewBeanContainer(cfg.Machine.BeanCapacityG, cfg.Machine.BeanInitialG)
	if err != nil {
		return nil, fmt.Errorf("bean container: %w", err)
	}

	brewPolicy, err := brewing.NewDefaultBrewPolicy(cfg.Machine.CleanThreshold, cfg.Machine.AllowEmptyRecipes)
	if err != nil {
		return nil, fmt.Errorf("brew policy: %w", err)
	}

	cleaningPolicy, err := brewing.NewDefaultCleaningPolicy(
		cfg.Machine.ScheduleThreshold,
		cfg.Machine.ImmediateThreshold,
		cfg.Machine.MaxTimeBetweenCleans,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("cleaning policy: %w", err)
	}

	var refillPolicy brewing.RefillPolicy = brewing.NewCapRefillPolicy()
	if cfg.Machine.StrictRefill {
		refillPolicy = brewing.NewStrictRefillPolicy()
	}

	machine, err := brewing.NewMachine(water, beans, brewPolicy, cleaningPolicy, refillPolicy, nil)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	recipeCatalog, err := catalog.NewCatalogFromConfig(cfg.Recipes)
	if err != nil {
		return nil, fmt.Errorf("recipe catalog: %w", err)
	}

	mediator := common.NewMediator()
	registrations := []error{
		common.RegisterHandler[*types.BrewCoffeeCommand](mediator, brewingCmd.NewBrewCoffeeHandler(machine)),
		common.RegisterHandler[*types.SelectRecipeCommand](mediator, brewingCmd.NewSelectRecipeHandler(machine, recipeCatalog)),
		common.RegisterHandler[*types.RefillResourceCommand](mediator, brewingCmd.NewRefillResourceHandler(machine)),
		common.RegisterHandler[*types.CleanMachineCommand](mediator, brewingCmd.NewCleanMachineHandler(machine)),
		common.RegisterHandler[*types.ScheduleCleaningCommand](mediator, brewingCmd.NewScheduleCleaningHandler(machine)),
		common.RegisterHandler[*types.GetMachineStatusQuery](mediator, brewingQuery.NewGetMachineStatusHandler(machine)),
		common.RegisterHandler[*types.ListRecipesQuery](mediator, brewingQuery.NewListRecipesHandler(recipeCatalog)),
	}
	for _, err := range registrations {
		if err != nil {
			return nil, fmt.Errorf("handler registration: %w", err)
		}
	}

	return &App{
		Config:   cfg,
		Machine:  machine,
		Catalog:  recipeCatalog,
		Mediator: mediator,
	}, nil
}

// newAppFromFlags builds the application from the global CLI flags
func newAppFromFlags() (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return BuildApp(cfg)
}

// Context returns a context carrying the CLI logger
func (a *App) Context() context.Context {
	useVerbose := verbose || a.Config.Logging.Level == "debug"
	logger := common.NewZerologLogger(os.Stderr, useVerbose)
	return common.WithLogger(context.Background(), logger)
}

// printResourceStatus prints one container line
func printResourceStatus(label string, status types.ResourceStatus) {
	fmt.Printf("  %-7s %d/%d (%.0f%% full, missing %d)\n",
		label+":", status.CurrentLevel, status.MaximumLevel,
		status.FulfillmentRatio*100, status.MissingCapacity)
}

// printMachineStatus prints the full status block
func printMachineStatus(status *types.MachineStatusResponse) {
	fmt.Printf("State:              %s\n", status.State)
	activeRecipe := status.ActiveRecipe
	if activeRecipe == "" {
		activeRecipe = "(none)"
	}
	fmt.Printf("Active recipe:      %s\n", activeRecipe)
	fmt.Printf("Dirty count:        %d\n", status.DirtyCount)
	if status.LastCleaned != nil {
		fmt.Printf("Last cleaned:       %s\n", status.LastCleaned.Format("2006-01-02 15:04:05"))
	} else {
		fmt.Printf("Last cleaned:       never\n")
	}
	fmt.Printf("Cleaning scheduled: %v\n", status.CleaningScheduled)
	printResourceStatus("Water", status.Water)
	printResourceStatus("Beans", status.Beans)
}

// fetchStatus runs the status query through the mediator
func fetchStatus(ctx context.Context, app *App) (*types.MachineStatusResponse, error) {
	response, err := app.Mediator.Send(ctx, &types.GetMachineStatusQuery{})
	if err != nil {
		return nil, err
	}
	return response.(*types.MachineStatusResponse), nil
}
