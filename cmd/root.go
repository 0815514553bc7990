package cmd

import (
	"fmt"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/config"
	"github.com/abhisek/certplan/internal/logging"
	"github.com/abhisek/certplan/internal/store"
	"github.com/abhisek/certplan/internal/studyplan"
	"github.com/abhisek/certplan/internal/tracker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// settings holds flag, environment and config file values.
var settings = config.New()

var rootCmd = &cobra.Command{
	Use:   "certplan",
	Short: "Cloud certification study planner",
	Long: "certplan builds week-by-week study plans for cloud certifications, " +
		"recommends a certification roadmap for your career goal and tracks your progress.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides CERTPLAN_DB env var)")
	flags.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/certplan/config.yaml)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("catalog", "", "Path to a certification catalog file (YAML or JSON)")

	cobra.CheckErr(settings.BindPFlag("db", flags.Lookup("db")))
	cobra.CheckErr(settings.BindPFlag("catalog", flags.Lookup("catalog")))
	cobra.CheckErr(settings.BindPFlag("log.level", flags.Lookup("log-level")))

	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")

	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(certCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(versionCmd)
}

// runtime carries what a command needs once flags and config are resolved.
type runtime struct {
	cfg     *config.Config
	log     *zap.Logger
	catalog *certification.Catalog

	store *store.Store
	svc   *tracker.Service
}

// newRuntime loads .env, the config file and the certification catalog.
// Interactive commands log to the log file only so the terminal UI is not
// overwritten.
func newRuntime(cmd *cobra.Command, interactive bool) (*runtime, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(settings, configFile)
	if err != nil {
		return nil, err
	}

	logCfg := logging.Config{Level: cfg.Log.Level, File: cfg.Log.File}
	if !interactive {
		logCfg.Console = cmd.ErrOrStderr()
	}
	log, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}

	catalog := certification.Default()
	if cfg.Catalog != "" {
		catalog, err = certification.LoadFile(cfg.Catalog)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		log.Info("loaded catalog", zap.String("path", cfg.Catalog), zap.Int("certifications", catalog.Len()))
	}

	return &runtime{cfg: cfg, log: log, catalog: catalog}, nil
}

// service opens the store on first use and returns the plan tracker.
func (r *runtime) service() (*tracker.Service, error) {
	if r.svc != nil {
		return r.svc, nil
	}

	dbPath, err := r.dbPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	r.log.Debug("opened store", zap.String("path", dbPath))

	r.store = st
	r.svc = tracker.NewService(studyplan.NewGenerator(r.catalog), st.PlanRepo(), st.EventRepo(), r.log)
	return r.svc, nil
}

// dbPath returns the configured database path, then CERTPLAN_DB, then the
// default XDG path.
func (r *runtime) dbPath() (string, error) {
	if r.cfg.DB != "" {
		return r.cfg.DB, store.EnsureDir(r.cfg.DB)
	}
	return store.DefaultDBPath()
}

func (r *runtime) Close() {
	if r.store != nil {
		if err := r.store.Close(); err != nil {
			r.log.Warn("close store", zap.Error(err))
		}
	}
	_ = r.log.Sync()
}
