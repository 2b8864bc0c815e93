package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saranya-m1904/contract-risk-bot/service"
)

func auditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Print the audit log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			initLogger(cfg)

			entries, available, err := service.NewAuditLog(cfg.Audit.File).Entries()
			if err != nil {
				return err
			}
			if !available || len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No audit logs available.")
				return nil
			}

			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s - %s\n", e.Timestamp, e.Action)
			}
			return nil
		},
	}
}
