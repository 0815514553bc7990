package cmd

import (
	"fmt"

	"github.com/abhisek/certplan/internal/app"
	"github.com/abhisek/certplan/internal/resources"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Start the interactive planner",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	wizardCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")
}

func runApp(cmd *cobra.Command) error {
	rt, err := newRuntime(cmd, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	opts := app.Options{
		Catalog:     rt.catalog,
		Library:     resources.DefaultLibrary(),
		WeeklyHours: rt.cfg.Plan.WeeklyHours,
		Logger:      rt.log,
	}
	opts.SkipSplash, _ = cmd.Flags().GetBool("no-splash")

	// Storage is optional: without it the planner still browses the
	// catalog and builds roadmaps.
	svc, err := rt.service()
	if err != nil {
		rt.log.Warn("storage unavailable", zap.Error(err))
		fmt.Fprintln(cmd.ErrOrStderr(), "Plan storage unavailable:", err)
		fmt.Fprintln(cmd.ErrOrStderr(), "Plans will not be saved.")
	} else {
		opts.Service = svc
	}

	return app.Run(opts)
}
