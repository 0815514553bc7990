package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/abhisek/certplan/internal/screens/history"
	"github.com/abhisek/certplan/internal/store"
	"github.com/abhisek/certplan/internal/studyplan"
	"github.com/abhisek/certplan/internal/tracker"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Create and track study plans",
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a study plan for one or more certifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		certIDs, _ := cmd.Flags().GetStringSlice("cert")
		hours, _ := cmd.Flags().GetFloat64("hours")
		startFlag, _ := cmd.Flags().GetString("start")
		name, _ := cmd.Flags().GetString("name")

		if hours == 0 {
			hours = rt.cfg.Plan.WeeklyHours
		}
		start, err := parseDate(startFlag)
		if err != nil {
			return err
		}
		if start.IsZero() {
			if start, err = rt.cfg.StartDate(); err != nil {
				return err
			}
		}

		svc, err := rt.service()
		if err != nil {
			return err
		}
		plan, err := svc.Create(cmd.Context(), studyplan.Request{
			CertificationIDs: certIDs,
			WeeklyHours:      hours,
			StartDate:        start,
			Name:             name,
		})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Created plan %s\n\n", plan.ID)
		printPlan(w, plan, time.Now(), 0)
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a study plan (defaults to the most recent)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(svc *tracker.Service) error {
			plan, err := svc.Get(cmd.Context(), optionalArg(args))
			if err != nil {
				return err
			}
			week, _ := cmd.Flags().GetInt("week")
			if week < 0 || week > plan.TotalWeeks {
				return fmt.Errorf("week %d is outside the plan (1-%d)", week, plan.TotalWeeks)
			}
			printPlan(cmd.OutOrStdout(), plan, time.Now(), week)
			return nil
		})
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved study plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(svc *tracker.Service) error {
			plans, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			printPlanList(cmd.OutOrStdout(), plans)
			return nil
		})
	},
}

var planProgressCmd = &cobra.Command{
	Use:   "progress <topic-id>",
	Short: "Record progress on a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		percent, _ := cmd.Flags().GetInt("percent")
		statusFlag, _ := cmd.Flags().GetString("status")
		notes, _ := cmd.Flags().GetString("notes")
		planID, _ := cmd.Flags().GetString("plan")

		var status studyplan.Status
		if statusFlag != "" {
			s, err := studyplan.ParseStatus(statusFlag)
			if err != nil {
				return err
			}
			status = s
		}

		return withService(cmd, func(svc *tracker.Service) error {
			plan, err := svc.Get(cmd.Context(), planID)
			if err != nil {
				return err
			}
			updated, err := svc.RecordProgress(cmd.Context(), plan.ID, args[0], percent, status, notes)
			if err != nil {
				return err
			}
			topic, _ := updated.Topic(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d%% (%s)\nPlan progress: %d%% (%d/%d topics completed)\n",
				topic.Name, topic.Progress, topic.Status.Label(),
				updated.Progress.Percentage, updated.Progress.CompletedTopics, updated.Progress.TotalTopics)
			return nil
		})
	},
}

var planMilestoneCmd = &cobra.Command{
	Use:   "milestone <milestone-id>",
	Short: "Toggle a milestone's completed state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, _ := cmd.Flags().GetString("plan")
		return withService(cmd, func(svc *tracker.Service) error {
			plan, err := svc.Get(cmd.Context(), planID)
			if err != nil {
				return err
			}
			updated, err := svc.ToggleMilestone(cmd.Context(), plan.ID, args[0])
			if err != nil {
				return err
			}
			for _, m := range updated.Milestones {
				if m.ID == args[0] {
					state := "reopened"
					if m.Completed {
						state = "completed"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s (week %d)\n", m.Name, state, m.Week)
				}
			}
			return nil
		})
	},
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a study plan and its history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(svc *tracker.Service) error {
			if err := svc.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", args[0])
			return nil
		})
	},
}

var planHistoryCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "Show the progress history of a plan",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withService(cmd, func(svc *tracker.Service) error {
			plan, err := svc.Get(cmd.Context(), optionalArg(args))
			if err != nil {
				return err
			}
			events, err := svc.History(cmd.Context(), plan.ID, store.QueryOpts{})
			if err != nil {
				return err
			}
			if limit > 0 && len(events) > limit {
				events = events[len(events)-limit:]
			}
			printHistory(cmd.OutOrStdout(), plan, events)
			return nil
		})
	},
}

func init() {
	planGenerateCmd.Flags().StringSlice("cert", nil, "Certification ID (repeat or comma-separate for several)")
	planGenerateCmd.Flags().Float64("hours", 0, "Study hours per week (default plan.weekly_hours)")
	planGenerateCmd.Flags().String("start", "", "Start date, YYYY-MM-DD (default plan.start_date or today)")
	planGenerateCmd.Flags().String("name", "", "Plan name")
	_ = planGenerateCmd.MarkFlagRequired("cert")

	planShowCmd.Flags().Int("week", 0, "Show the schedule for one week only")

	planProgressCmd.Flags().Int("percent", 0, "Topic progress, 0-100")
	planProgressCmd.Flags().String("status", "", "Topic status: not-started, in-progress or completed")
	planProgressCmd.Flags().String("notes", "", "Notes for the topic")
	planProgressCmd.Flags().String("plan", "", "Plan ID (default most recent)")
	_ = planProgressCmd.MarkFlagRequired("percent")

	planMilestoneCmd.Flags().String("plan", "", "Plan ID (default most recent)")

	planHistoryCmd.Flags().Int("limit", 0, "Show only the most recent N events")

	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planProgressCmd)
	planCmd.AddCommand(planMilestoneCmd)
	planCmd.AddCommand(planDeleteCmd)
	planCmd.AddCommand(planHistoryCmd)
}

// withService runs fn against the plan tracker, turning a missing plan
// into a hint.
func withService(cmd *cobra.Command, fn func(*tracker.Service) error) error {
	rt, err := newRuntime(cmd, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	svc, err := rt.service()
	if err != nil {
		return err
	}
	err = fn(svc)
	if errors.Is(err, tracker.ErrNoPlan) {
		return fmt.Errorf("%w; create one with 'certplan plan generate' or 'certplan wizard'", err)
	}
	return err
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// printPlan writes a plan summary. A non-zero week limits the schedule to
// that week.
func printPlan(w io.Writer, plan *studyplan.StudyPlan, now time.Time, week int) {
	fmt.Fprintf(w, "%s\n", plan.Name)
	fmt.Fprintf(w, "Certifications: %s\n", strings.Join(plan.CertificationIDs, ", "))
	fmt.Fprintf(w, "Schedule: %d weeks at %g hours/week, %s to %s\n",
		plan.TotalWeeks, plan.WeeklyHours,
		plan.StartDate.Format("Jan 2, 2006"), plan.TargetEndDate.Format("Jan 2, 2006"))
	fmt.Fprintf(w, "Progress: %s %d%% (%d/%d topics, %.1f/%.1f hours)\n",
		textBar(plan.Progress.Percentage, 20), plan.Progress.Percentage,
		plan.Progress.CompletedTopics, plan.Progress.TotalTopics,
		plan.Progress.CompletedHours, plan.Progress.TotalHours)
	if current := plan.CurrentWeek(now); current > 0 {
		fmt.Fprintf(w, "Current week: %d of %d\n", current, plan.TotalWeeks)
	}

	if week > 0 {
		fmt.Fprintf(w, "\nWeek %d\n", week)
		fmt.Fprintln(w, strings.Repeat("─", 60))
		for _, e := range plan.EntriesForWeek(week) {
			fmt.Fprintf(w, "%-50s  %5.1fh\n", truncate(e.Topic, 50), e.Hours)
		}
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-22s  %-40s  %-7s  %6s  %-12s  %4s\n",
		"Topic", "Name", "Weeks", "Hours", "Status", "Done")
	fmt.Fprintln(w, strings.Repeat("─", 102))
	for _, t := range plan.Topics {
		fmt.Fprintf(w, "%-22s  %-40s  %-7s  %6.1f  %-12s  %3d%%\n",
			t.ID, truncate(t.Name, 40), weekRange(t.StartWeek, t.EndWeek),
			t.DurationHours, t.Status.Label(), t.Progress)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Milestones")
	for _, m := range plan.Milestones {
		mark := " "
		if m.Completed {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] Week %-3d %-18s (%s)\n", mark, m.Week, m.Name, m.ID)
	}
}

func printPlanList(w io.Writer, plans []store.PlanSummary) {
	if len(plans) == 0 {
		fmt.Fprintln(w, "No study plans yet.")
		return
	}

	fmt.Fprintf(w, "%-36s  %-40s  %5s  %4s  %s\n", "ID", "Name", "Weeks", "Done", "Updated")
	fmt.Fprintln(w, strings.Repeat("─", 104))
	for _, p := range plans {
		fmt.Fprintf(w, "%-36s  %-40s  %5d  %3d%%  %s\n",
			p.ID, truncate(p.Name, 40), p.TotalWeeks, p.Percentage,
			p.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(w, "\n%d plans\n", len(plans))
}

func printHistory(w io.Writer, plan *studyplan.StudyPlan, events []store.ProgressEvent) {
	fmt.Fprintf(w, "%s: %d events\n", plan.Name, len(events))
	fmt.Fprintln(w, strings.Repeat("─", 72))
	for _, ev := range events {
		fmt.Fprintf(w, "%4d  %s  %-40s  %3d%%\n",
			ev.Sequence, ev.Timestamp.Local().Format("2006-01-02 15:04"),
			truncate(history.Describe(ev, plan), 40), ev.Percentage)
	}
}

func weekRange(start, end int) string {
	if start == end {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d-%d", start, end)
}

func textBar(percent, width int) string {
	filled := percent * width / 100
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
