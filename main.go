package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/saranya-m1904/contract-risk-bot/config"
	"github.com/saranya-m1904/contract-risk-bot/pkg/logger"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "contract-risk-bot",
		Short: "Rule-based contract analysis and risk assessment",
		Long: `contract-risk-bot ingests free-form contract text (English / Hindi),
segments it into clauses, classifies the contract, extracts key entities,
tags each clause with a modality label and a keyword-driven risk score,
and renders a downloadable PDF risk report.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: config.yaml)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(auditCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received interrupt signal, shutting down")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configured file. Without an explicit --config flag a
// missing config.yaml is not an error; the defaults apply.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = "config.yaml"
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

func initLogger(cfg *config.Config) {
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}
