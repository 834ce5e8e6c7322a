package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"supercalc/cmd/age"
	"supercalc/cmd/bmi"
	"supercalc/cmd/budget"
	"supercalc/cmd/currency"
	"supercalc/cmd/discount"
	"supercalc/cmd/emi"
	"supercalc/cmd/histlog"
	"supercalc/cmd/interest"
	"supercalc/cmd/invest"
	"supercalc/cmd/percent"
	"supercalc/cmd/root"
	"supercalc/cmd/snapshot"
	"supercalc/cmd/solve"
	"supercalc/cmd/units"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly - this affects ALL new loggers
	configureLogLevelDirectly()

	// 3. Now that logging is properly configured, initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(percent.Cmd)
	root.Cmd.AddCommand(emi.Cmd)
	root.Cmd.AddCommand(discount.Cmd)
	root.Cmd.AddCommand(interest.Cmd)
	root.Cmd.AddCommand(invest.Cmd)
	root.Cmd.AddCommand(bmi.Cmd)
	root.Cmd.AddCommand(age.Cmd)
	root.Cmd.AddCommand(units.Cmd)
	root.Cmd.AddCommand(currency.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(histlog.Cmd)
	root.Cmd.AddCommand(solve.Cmd)
	root.Cmd.AddCommand(snapshot.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	// Try to find .env file in current directory
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	// Load .env file silently without logging
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
// and returns the configured level
func configureLogLevelDirectly() logrus.Level {
	// Get log level from environment variable
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info" // Default log level
	}

	// Parse the log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		// Don't log here, just use default info level if we can't parse
		logLevel = logrus.InfoLevel
	}

	// This is critical: set the global logrus level BEFORE any logging happens
	// This affects ALL existing and future loggers
	logrus.SetLevel(logLevel)

	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
