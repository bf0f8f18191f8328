// Package main provides the polybius binary: an HTTP backend for the
// password form and a command line harness for generating passwords.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/polybius/polybius-go/internal/config"
)

const (
	Version = "0.1.0"
	appName = "polybius"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		logLevel string
		cfg      config.Config
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Memorable password generator",
		Long: `Polybius builds memorable passwords out of personal facts such as
birth dates, meaningful numbers and favourite words.

Each fact becomes a short fragment (a "bit"): years may appear with two or
four digits, words contribute their first one to three characters, and
keyboard symbols can be mixed in as filler.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				slog.Debug("no .env file found, using environment variables")
			}
			cfg = config.Load()
			level := logLevelFor(cmd.Flags().Changed("log-level"), logLevel, cfg)
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(serveCmd(&cfg), generateCmd(&cfg))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

// logLevelFor picks the --log-level flag when set, else LOG_LEVEL via cfg.
func logLevelFor(flagChanged bool, flag string, cfg config.Config) slog.Level {
	if flagChanged {
		return config.ParseLevel(flag)
	}
	return config.ParseLevel(cfg.LogLevel)
}
