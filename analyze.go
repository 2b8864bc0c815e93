package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saranya-m1904/contract-risk-bot/config"
	"github.com/saranya-m1904/contract-risk-bot/model"
	"github.com/saranya-m1904/contract-risk-bot/service"
)

// sampleContract is the bundled demo input.
const sampleContract = `The employee shall indemnify the company.
The company may terminate the agreement without notice.
A penalty of ₹1,00,000 applies for breach.
The employee shall not compete for two years.`

func analyzeCmd() *cobra.Command {
	var (
		pdfPath string
		sample  bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze contract text from a file, stdin, or the bundled sample",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			initLogger(cfg)

			text, err := readInput(args, sample)
			if err != nil {
				return err
			}

			rules, err := config.LoadRules(cfg.RulesFile)
			if err != nil {
				return fmt.Errorf("failed to load rules: %w", err)
			}
			analyzer, err := service.NewAnalyzer(rules)
			if err != nil {
				return err
			}

			auditLog := service.NewAuditLog(cfg.Audit.File)
			if err := auditLog.Append("Contract analyzed"); err != nil {
				return err
			}

			analysis := analyzer.Analyze(text)
			printAnalysis(cmd.OutOrStdout(), analysis)

			if pdfPath != "" {
				if err := writeReport(analysis, pdfPath); err != nil {
					return err
				}
				if err := auditLog.Append("PDF report generated"); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nReport written to %s\n", pdfPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write the PDF report to this path")
	cmd.Flags().BoolVar(&sample, "sample", false, "analyze the bundled sample contract")
	return cmd
}

func readInput(args []string, sample bool) (string, error) {
	if sample {
		return sampleContract, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read contract: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func printAnalysis(w io.Writer, a *model.Analysis) {
	fmt.Fprintln(w, "Contract Overview")
	fmt.Fprintf(w, "  Contract Type: %s\n", a.ContractType)
	if a.ScoreApplicable {
		fmt.Fprintf(w, "  Overall Risk Score: %.2f\n", a.CompositeScore)
	} else {
		fmt.Fprintln(w, "  Overall Risk Score: not applicable (no clauses extracted)")
	}

	fmt.Fprintln(w, "\nExtracted Key Information")
	fmt.Fprintf(w, "  Amounts: %s\n", joinOrNotDetected(a.Entities.Amounts))
	fmt.Fprintf(w, "  Dates: %s\n", joinOrNotDetected(a.Entities.Dates))
	fmt.Fprintf(w, "  Jurisdiction: %s\n", joinOrNotDetected(a.Entities.Jurisdiction))

	for _, r := range a.Clauses {
		fmt.Fprintf(w, "\nClause %d\n", r.Clause.Ordinal)
		fmt.Fprintf(w, "  %s\n", r.Clause.Text)
		fmt.Fprintf(w, "  Clause Type: %s\n", r.Type)
		fmt.Fprintf(w, "  Risk Level: %s\n", r.Level)
		fmt.Fprintf(w, "  Explanation: %s\n", r.Explanation)
		fmt.Fprintf(w, "  Mitigation Advice: %s\n", r.Mitigation)
	}
}

func writeReport(a *model.Analysis, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	if err := service.RenderReport(a, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func joinOrNotDetected(values []string) string {
	if len(values) == 0 {
		return "Not detected"
	}
	return strings.Join(values, ", ")
}
