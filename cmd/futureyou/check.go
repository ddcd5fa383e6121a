package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"futureyou/internal/config"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify credentials, directories, and optionally an input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd)

			report := config.CheckEnvironment(cfg)
			printCheckReport("environment", report)
			ok := report.OK

			if inputPath, _ := cmd.Flags().GetString("input"); inputPath != "" {
				inputReport := config.CheckInputFile(inputPath)
				printCheckReport("input file", inputReport)
				ok = ok && inputReport.OK
			}

			if !ok {
				return fmt.Errorf("pre-flight check failed")
			}
			fmt.Println("\nAll checks passed.")
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "", "input file to validate")
	addModelFlags(cmd)
	return cmd
}

func printCheckReport(name string, r *config.CheckReport) {
	fmt.Printf("Checking %s\n", name)
	for _, msg := range r.Errors {
		fmt.Println("  ERROR:", msg)
	}
	for _, msg := range r.Warnings {
		fmt.Println("  warning:", msg)
	}
	for _, msg := range r.Info {
		fmt.Println("  info:", msg)
	}
	if r.OK && len(r.Errors) == 0 && len(r.Warnings) == 0 && len(r.Info) == 0 {
		fmt.Println("  ok")
	}
}
