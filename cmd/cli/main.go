package main

import (
	"fmt"
	"os"
	"time"

	"github.com/finboard/finboard/pkg/store/seed"
	"github.com/finboard/finboard/pkg/terminal"
	"github.com/finboard/finboard/pkg/terminal/commands"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "finboard",
		Short: "Financial statistics over the demo dataset",
	}

	registry := seed.DemoRegistry(42, time.Now())
	reporter := terminal.NewReporter(os.Stdout)

	rootCmd.AddCommand(commands.NewStatsCmd(registry, reporter))

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
