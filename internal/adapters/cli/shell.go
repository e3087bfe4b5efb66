package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/types"
)

const shellHelp = `Commands:
  list                  - show available recipes
  select <name>         - select a recipe (e.g. select espresso)
  brew                  - attempt to brew the selected recipe
  refill_water <ml>     - add water (e.g. refill_water 200)
  refill_beans <g>      - add beans (e.g. refill_beans 50)
  clean                 - perform cleaning (resets dirty count)
  schedule              - mark cleaning as scheduled
  status                - show machine and resource state
  help                  - show this help
  quit | q              - exit`

// NewShellCommand creates the interactive shell command
func NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell keeping machine state across operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppFromFlags()
			if err != nil {
				return err
			}

			return runShell(app, os.Stdin)
		},
	}
}

// runShell is the read-eval-print loop. Operation errors are printed and the
// loop continues; only quit or EOF terminate it.
func runShell(app *App, input *os.File) error {
	ctx := app.Context()

	fmt.Println("Coffee machine shell. Type 'help' for available commands.")
	if status, err := fetchStatus(ctx, app); err == nil {
		printMachineStatus(status)
	}

	scanner := bufio.NewScanner(input)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		command := strings.ToLower(parts[0])

		if command == "quit" || command == "q" {
			fmt.Println("Bye.")
			return nil
		}

		if err := runShellCommand(ctx, app, command, parts[1:]); err != nil {
			fmt.Println("Error:", err)
		}
	}
}

func runShellCommand(ctx context.Context, app *App, command string, args []string) error {
	switch command {
	case "help":
		fmt.Println(shellHelp)
		return nil

	case "list":
		response, err := app.Mediator.Send(ctx, &types.ListRecipesQuery{})
		if err != nil {
			return err
		}
		for _, recipe := range response.(*types.ListRecipesResponse).Recipes {
			grind := recipe.Grind
			if grind == "" {
				grind = "-"
			}
			fmt.Printf("  %-12s water=%dml beans=%dg grind=%s\n",
				recipe.Name, recipe.WaterML, recipe.BeansG, grind)
		}
		return nil

	case "select":
		if len(args) < 1 {
			return fmt.Errorf("usage: select <name>")
		}
		if _, err := app.Mediator.Send(ctx, &types.SelectRecipeCommand{Name: args[0]}); err != nil {
			return err
		}
		fmt.Println("Selected recipe:", args[0])
		return nil

	case "brew":
		response, err := app.Mediator.Send(ctx, &types.BrewCoffeeCommand{})
		if err != nil {
			return err
		}
		result := response.(*types.BrewCoffeeResponse)
		fmt.Println("Result:", result.Decision)
		return printShellStatus(ctx, app)

	case "refill_water", "refill_beans":
		if len(args) < 1 {
			return fmt.Errorf("usage: %s <amount>", command)
		}
		amount, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("amount must be an integer: %q", args[0])
		}
		resource := "water"
		if command == "refill_beans" {
			resource = "beans"
		}
		response, err := app.Mediator.Send(ctx, &types.RefillResourceCommand{Resource: resource, Amount: amount})
		if err != nil {
			return err
		}
		result := response.(*types.RefillResourceResponse)
		fmt.Println("Result:", result.Result)
		printResourceStatus(result.Resource, result.Status)
		return nil

	case "clean":
		if _, err := app.Mediator.Send(ctx, &types.CleanMachineCommand{}); err != nil {
			return err
		}
		fmt.Println("Machine cleaned.")
		return nil

	case "schedule":
		if _, err := app.Mediator.Send(ctx, &types.ScheduleCleaningCommand{}); err != nil {
			return err
		}
		fmt.Println("Cleaning scheduled.")
		return nil

	case "status":
		return printShellStatus(ctx, app)

	default:
		return fmt.Errorf("unknown command %q (type 'help')", command)
	}
}

func printShellStatus(ctx context.Context, app *App) error {
	status, err := fetchStatus(ctx, app)
	if err != nil {
		return err
	}
	printMachineStatus(status)
	return nil
}
