// Package root contains the root command for the application
package root

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"supercalc/internal/config"
	"supercalc/internal/ledger"
	"supercalc/internal/rates"
	"supercalc/internal/report"
	"supercalc/internal/session"
	"supercalc/internal/solver"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Session is the single calculation session owned by the CLI. All
	// subcommands operate against the same ledger, history and rate table.
	Session *session.Session

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "supercalc",
		Short: "A multi-tool calculator suite with a transaction ledger and calculation history.",
		Long: `supercalc bundles a dozen numeric utilities (percentage, EMI, interest,
investment projection, BMI, age, unit and currency conversion), a personal
transaction ledger with category breakdown, and an AI math solver.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to supercalc!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			// Propagate the configured logger into the engine packages
			rates.SetLogger(Log)
			ledger.SetLogger(Log)
			session.SetLogger(Log)
			solver.SetLogger(Log)
			report.SetLogger(Log)

			Session = buildSession(Cfg)
		},
	}
)

// buildSession wires the session from configuration: the HTTP rate fetcher
// and, when enabled, the Gemini solver client.
func buildSession(cfg *config.Config) *session.Session {
	fetcher := rates.NewHTTPFetcher(cfg.Rates.Endpoint, &http.Client{
		Timeout: time.Duration(cfg.Rates.TimeoutSeconds) * time.Second,
	})

	var solverClient solver.Client
	if cfg.AI.Enabled {
		apiKey := cfg.AI.APIKey
		if apiKey == "" {
			apiKey = config.GetGeminiAPIKey()
		}
		solverClient = solver.NewGeminiClient(apiKey, cfg.AI.Model)
	}

	return session.New(fetcher, solverClient)
}

// Init initializes the root command and all flags
func Init() {
	// No persistent flags yet; subcommands declare their own.
}
