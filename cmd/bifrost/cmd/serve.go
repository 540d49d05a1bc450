/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/bifrost/pkg/api"
	"github.com/ssargent/bifrost/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the frame inspector REST API server",
	Long: `Start the Bifrost frame inspector REST API server. Clients POST raw
byte streams and receive the frames recovered from them plus scan
statistics; Prometheus metrics are exposed on /metrics.

Examples:
  bifrost serve --config ./bifrost.yaml
  bifrost serve --api-key=mysecretkey --port=9310`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		port, _ := cmd.Flags().GetInt("port")
		apiKey, _ := cmd.Flags().GetString("api-key")

		cfg := config.DefaultConfig()
		if configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		}

		// Flags override the config file.
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		if apiKey != "" {
			cfg.APIKey = apiKey
		}
		if cfg.APIKey == "" || cfg.APIKey == "auto" {
			generated, err := config.GenerateSecureKey(32)
			if err != nil {
				return fmt.Errorf("failed to generate API key: %w", err)
			}
			cfg.APIKey = generated
			cmd.Printf("Generated API key: %s\n", cfg.APIKey)
		}

		return api.StartServer(api.ServerConfig{
			Port:         cfg.Port,
			Bind:         cfg.Bind,
			APIKey:       cfg.APIKey,
			MaxScanBytes: cfg.MaxScanBytes,
			LogLevel:     cfg.Logging.Level,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
	serveCmd.Flags().IntP("port", "p", 9310, "Port to listen on")
	serveCmd.Flags().String("api-key", "", "API key protecting the inspector routes")
}
