package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/roadmap"
	"github.com/abhisek/certplan/internal/studyplan"
	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Recommend a certification path for a career role",
	Example: "  certplan roadmap --role cloud-architect --provider aws --rating compute=2,networking=1 --months 6\n" +
		"  certplan roadmap --role devops-engineer --held aws-ccp --plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		roleFlag, _ := cmd.Flags().GetString("role")
		providerFlag, _ := cmd.Flags().GetString("provider")
		held, _ := cmd.Flags().GetStringSlice("held")
		ratingPairs, _ := cmd.Flags().GetStringSlice("rating")
		hours, _ := cmd.Flags().GetFloat64("hours")
		months, _ := cmd.Flags().GetInt("months")
		createPlan, _ := cmd.Flags().GetBool("plan")

		role, err := parseRole(roleFlag)
		if err != nil {
			return err
		}
		var provider certification.Provider
		if providerFlag != "" && providerFlag != "any" {
			if provider, err = parseProvider(providerFlag); err != nil {
				return err
			}
		}
		ratings, err := parseRatings(ratingPairs)
		if err != nil {
			return err
		}
		if months < 0 {
			return fmt.Errorf("--months must not be negative, got %d", months)
		}
		if hours == 0 {
			hours = rt.cfg.Plan.WeeklyHours
		}

		rm, err := roadmap.Generate(rt.catalog, roadmap.Assessment{
			Ratings:            ratings,
			HeldCertifications: held,
			PreferredProvider:  provider,
			WeeklyHours:        hours,
		}, roadmap.CareerGoal{Role: role, TargetMonths: months})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		printRoadmap(w, rm, hours)
		if !createPlan || len(rm.Steps) == 0 {
			return nil
		}

		svc, err := rt.service()
		if err != nil {
			return err
		}
		start, err := rt.cfg.StartDate()
		if err != nil {
			return err
		}
		plan, err := svc.Create(cmd.Context(), studyplan.Request{
			CertificationIDs: rm.CertificationIDs(),
			WeeklyHours:      hours,
			StartDate:        start,
			Name:             fmt.Sprintf("%s Roadmap", certification.RoleDisplayName(role)),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nCreated plan %s (%d weeks). View it with 'certplan plan show %s'.\n",
			plan.ID, plan.TotalWeeks, plan.ID)
		return nil
	},
}

func init() {
	roadmapCmd.Flags().String("role", "", "Career role (e.g. cloud-architect, devops-engineer)")
	roadmapCmd.Flags().String("provider", "", "Preferred provider: aws, azure, gcp, vendor-neutral or any")
	roadmapCmd.Flags().StringSlice("held", nil, "Certification IDs you already hold")
	roadmapCmd.Flags().StringSlice("rating", nil, "Self-assessment as domain=0-3 (compute, networking, storage, security, databases, devops)")
	roadmapCmd.Flags().Float64("hours", 0, "Study hours per week (default plan.weekly_hours)")
	roadmapCmd.Flags().Int("months", 0, "Target months to finish (0 for no deadline)")
	roadmapCmd.Flags().Bool("plan", false, "Create one study plan covering every step")
	_ = roadmapCmd.MarkFlagRequired("role")
}

func printRoadmap(w io.Writer, rm roadmap.Roadmap, weeklyHours float64) {
	fmt.Fprintf(w, "Roadmap for %s (%s)\n",
		certification.RoleDisplayName(rm.Goal.Role), rm.Experience.Label())

	if len(rm.Steps) == 0 {
		fmt.Fprintln(w, "\nNothing left to study: you already hold every certification on this path.")
	} else {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%-3s  %-22s  %-44s  %-7s  %6s  %s\n", "#", "ID", "Name", "Weeks", "Hours", "Why")
		fmt.Fprintln(w, strings.Repeat("─", 120))
		for i, s := range rm.Steps {
			fmt.Fprintf(w, "%-3d  %-22s  %-44s  %-7s  %6.1f  %s\n",
				i+1, s.Certification.ID, truncate(s.Certification.Name, 44),
				weekRange(s.StartWeek, s.EndWeek), s.Hours, s.Reason)
		}
		fmt.Fprintf(w, "\nTotal: %.1f hours over %d weeks at %g hours/week\n", rm.TotalHours, rm.TotalWeeks, weeklyHours)
	}

	switch {
	case rm.Goal.TargetMonths == 0:
		fmt.Fprintln(w, "No deadline set")
	case rm.FitsTarget:
		fmt.Fprintf(w, "Fits your %d-month target\n", rm.Goal.TargetMonths)
	default:
		fmt.Fprintf(w, "Needs %d weeks, %d more than your %d-month target\n",
			rm.TotalWeeks, rm.TotalWeeks-rm.TargetWeeks, rm.Goal.TargetMonths)
	}

	if len(rm.Skipped) > 0 {
		fmt.Fprintln(w, "\nSkipped")
		for _, s := range rm.Skipped {
			fmt.Fprintf(w, "  %-22s  %s\n", s.CertificationID, s.Reason)
		}
	}
}
