package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"futureyou/internal/domain"
)

func interactiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Collect a profile and decision interactively, then simulate",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd)
			in := bufio.NewScanner(os.Stdin)

			fmt.Println("Future-You Simulator")
			fmt.Println(strings.Repeat("-", 40))

			profile := collectProfile(in)
			decision := prompt(in, "What decision are you facing? ")
			timelines := collectTimelines(in)
			visuals := promptYesNo(in, "Render a Decision DNA chart? (y/N) ")

			ctx := cmd.Context()
			svc, err := newService(ctx, cfg)
			if err != nil {
				return err
			}

			session := svc.CreateSession(profile)
			result, err := svc.SimulateDecision(ctx, session, decision, timelines)
			if err != nil {
				return err
			}

			printSummary(result)
			writeReports(cfg, result, profile, decision, visuals)

			if promptYesNo(in, "\nRecord the path you chose? (y/N) ") {
				chosen := prompt(in, "Chosen path: ")
				reasoning := prompt(in, "Reasoning (optional): ")
				if err := svc.TrackDecision(decision, chosen, reasoning); err != nil {
					fmt.Println("warning: tracking decision:", err)
				} else {
					fmt.Println("Decision tracked.")
				}
			}
			return nil
		},
	}
	addModelFlags(cmd)
	return cmd
}

func collectProfile(in *bufio.Scanner) *domain.UserProfile {
	p := &domain.UserProfile{
		UserID:      prompt(in, "User id: "),
		CurrentRole: prompt(in, "Current role: "),
	}
	p.Age, _ = strconv.Atoi(prompt(in, "Age: "))

	if v := prompt(in, "Years of experience (optional): "); v != "" {
		p.ExperienceYears, _ = strconv.Atoi(v)
	}
	if v := prompt(in, "Current salary (optional): "); v != "" {
		p.CurrentSalary, _ = strconv.Atoi(v)
	}
	p.Location = prompt(in, "Location (optional): ")
	p.Education = prompt(in, "Education (optional): ")

	p.Skills = promptList(in, "Skills (comma separated): ")
	p.Interests = promptList(in, "Interests (comma separated): ")
	p.LifeGoals = promptList(in, "Life goals (comma separated): ")
	p.PastDecisions = promptList(in, "Past major decisions (comma separated): ")
	return p
}

func collectTimelines(in *bufio.Scanner) []domain.Timeline {
	raw := prompt(in, "Timelines [1yr,3yr,5yr] (enter for all): ")
	if raw == "" {
		return domain.AllTimelines()
	}
	var out []domain.Timeline
	for _, part := range strings.Split(raw, ",") {
		out = append(out, domain.Timeline(strings.TrimSpace(part)))
	}
	return out
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func promptList(in *bufio.Scanner, label string) []string {
	raw := prompt(in, label)
	items := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

func promptYesNo(in *bufio.Scanner, label string) bool {
	answer := strings.ToLower(prompt(in, label))
	return answer == "y" || answer == "yes"
}
