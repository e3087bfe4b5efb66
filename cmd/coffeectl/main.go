package main

import (
	"fmt"
	"os"

	"github.com/andrescamacho/coffeemachine-go/internal/adapters/cli"
)

func main() {
	rootCmd := cli.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
