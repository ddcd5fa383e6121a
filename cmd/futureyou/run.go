package main

import (
	"github.com/spf13/cobra"

	"futureyou/internal/config"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation from a JSON input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd)
			inputPath, _ := cmd.Flags().GetString("input")
			visuals, _ := cmd.Flags().GetBool("visuals")

			in, err := config.LoadInput(inputPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, err := newService(ctx, cfg)
			if err != nil {
				return err
			}

			session := svc.CreateSession(in.UserProfile)
			result, err := svc.SimulateDecision(ctx, session, in.Decision, in.Timelines)
			if err != nil {
				return err
			}

			printSummary(result)
			writeReports(cfg, result, in.UserProfile, in.Decision, visuals || in.GenerateVisuals)
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "input.json", "path to the JSON input file")
	cmd.Flags().Bool("visuals", false, "also render the Decision DNA chart")
	addModelFlags(cmd)
	return cmd
}
