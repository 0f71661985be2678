package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/finboard/finboard/pkg/server"
	"github.com/finboard/finboard/pkg/store/seed"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var dataSeed int64

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the finboard web server",
		RunE:  runServer,
	}

	rootCmd.Flags().Int64Var(&dataSeed, "seed", 42, "Seed for the demo dataset generator")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	viper.AutomaticEnv()
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	registry := seed.DemoRegistry(dataSeed, time.Now())
	for _, company := range registry.Companies() {
		store, err := registry.Get(company)
		if err != nil {
			return fmt.Errorf("failed to read seeded registry: %w", err)
		}
		logger.Info().Str("company", company).Int("records", store.Len()).Msg("seeded company dataset")
	}

	addr := net.JoinHostPort(viper.GetString("SERVER_HOST"), viper.GetString("SERVER_PORT"))

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: viper.GetDuration("SHUTDOWN_TIMEOUT"),
		Dependencies: server.Dependencies{
			Registry: registry,
		},
	})

	return api.Start()
}
