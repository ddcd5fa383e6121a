package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"futureyou/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "futureyou",
	Short: "Future-You Simulator CLI",
	Long: `Future-You Simulator explores the futures a life decision opens up.
It extracts a Decision DNA from your profile, simulates three scenarios per
time horizon, compares them against your values, and turns the comparison
into concrete advice. Results are written as HTML and JSON reports.`,
}

func main() {
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func registerCommands() {
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(interactiveCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(checkCmd())
}

// loadConfig applies command-level overrides on top of the environment.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()
	if mock, _ := cmd.Flags().GetBool("mock"); mock {
		cfg.UseMockLLM = true
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Model = model
	}
	if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
		cfg.OutputDir = dir
	}
	return cfg
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("mock", false, "use the offline mock model client")
	cmd.Flags().String("model", "", "Gemini model name (default from environment)")
	cmd.Flags().String("output-dir", "", "directory for generated reports")
}
