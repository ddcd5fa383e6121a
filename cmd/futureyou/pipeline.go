package main

import (
	"context"
	"fmt"
	"strings"

	"futureyou/internal/adapters/llm"
	"futureyou/internal/adapters/report"
	"futureyou/internal/adapters/storage/memory"
	"futureyou/internal/app/simulation"
	"futureyou/internal/config"
	"futureyou/internal/domain"
	"futureyou/internal/observability"
)

// newService wires the model client, in-memory stores, and the agent
// pipeline from config.
func newService(ctx context.Context, cfg *config.Config) (*simulation.Service, error) {
	var (
		client domain.TextGenerator
		err    error
	)
	if cfg.UseMockLLM {
		observability.Logger().Info("using mock model client")
		client = llm.NewMockClient()
	} else {
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("no API key configured, set GEMINI_API_KEY or pass --mock")
		}
		client, err = llm.NewGeminiClient(ctx, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("initializing Gemini client: %w", err)
		}
	}

	return simulation.NewService(
		client,
		simulation.Options{Model: cfg.Model},
		memory.NewSessionBank(),
		memory.NewDecisionLog(),
	)
}

// writeReports renders the HTML/JSON outputs and, optionally, the DNA chart.
// Report failures are surfaced but never invalidate the simulation itself.
func writeReports(cfg *config.Config, result *domain.SimulationResult, profile *domain.UserProfile, decision string, visuals bool) {
	w := report.NewWriter(cfg.OutputDir)
	files, err := w.WriteAll(result, profile, decision)
	if err != nil {
		fmt.Println("warning: writing reports:", err)
		return
	}
	fmt.Println("\nReports written:")
	fmt.Println("  " + files.HTMLReport)
	fmt.Println("  " + files.JSONResult)
	fmt.Println("  " + files.JSONSummary)

	if visuals {
		chart, err := report.WriteDNAChart(result, cfg.VisualsDir)
		if err != nil {
			fmt.Println("warning: writing DNA chart:", err)
			return
		}
		fmt.Println("  " + chart)
	}
}

// printSummary echoes the pipeline outcome to the terminal.
func printSummary(result *domain.SimulationResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("SIMULATION COMPLETE")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\nDecision DNA\n")
	fmt.Printf("  risk tolerance:  %.2f\n", result.DNA.RiskTolerance)
	fmt.Printf("  time horizon:    %s\n", result.DNA.TimeHorizonPreference)
	fmt.Printf("  value priorities: %s\n", strings.Join(result.DNA.ValuePriorities, ", "))

	fmt.Printf("\nScenarios (%d)\n", len(result.Scenarios))
	for _, sc := range result.Scenarios {
		fmt.Printf("  [%s] %s (p=%.2f)\n", sc.ScenarioID, sc.DecisionPath, sc.Probability)
	}

	fmt.Printf("\nBest scenario: %s\n", result.Analysis.BestScenario)
	fmt.Printf("\nAdvice\n%s\n", result.Advice)
	fmt.Printf("\nSession: %s\n", result.SessionID)
}
