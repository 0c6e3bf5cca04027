package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kubev2v/patch-scheduler/internal/config"
	"github.com/kubev2v/patch-scheduler/internal/server/middlewares"
	"github.com/kubev2v/patch-scheduler/internal/services"
	"github.com/kubev2v/patch-scheduler/internal/store"
	"github.com/kubev2v/patch-scheduler/pkg/webhook"
)

const (
	envPrefix = "PATCH_SCHEDULER"

	// configKeyAnnotation ties a flag to its key in the configuration file.
	configKeyAnnotation = "patch-scheduler/config-key"

	defaultDataFolder = "data"
)

// NewRootCommand builds the CLI. Configuration is resolved in this order, last
// wins: defaults, configuration file, environment (PATCH_SCHEDULER_*), flags.
func NewRootCommand() *cobra.Command {
	cfg := config.NewConfigurationWithOptionsAndDefaults()
	v := viper.New()

	var configFile, envFile string

	cmd := &cobra.Command{
		Use:          "patch-scheduler",
		Short:        "Plan and track patch batches for a server fleet",
		SilenceUsage: true,
		PersistentPreRunE: cobrautil.CommandStack(
			loadDotEnv(&envFile),
			cobrautil.SyncViperPreRunE(envPrefix),
			loadConfiguration(v, &configFile, cfg),
			setupLogging(cfg),
		),
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "path to a YAML configuration file")
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", cfg.LogFormat, "log format (console, json)")
	flags.String("data-folder", defaultDataFolder, "folder holding the schedule database, empty for in-memory")
	configFlag(flags, "log-level", "loglevel")
	configFlag(flags, "log-format", "logformat")
	configFlag(flags, "data-folder", "store.datafolder")

	cmd.AddCommand(
		newPlanCommand(cfg),
		newShowCommand(cfg),
		newServeCommand(cfg),
		newNotifyCommand(cfg),
		newPrecheckCommand(cfg),
	)

	return cmd
}

func configFlag(flags *pflag.FlagSet, name, key string) {
	if err := flags.SetAnnotation(name, configKeyAnnotation, []string{key}); err != nil {
		panic(err)
	}
}

func loadDotEnv(path *string) cobrautil.CobraRunFunc {
	return func(cmd *cobra.Command, args []string) error {
		if *path == "" {
			return nil
		}
		if err := godotenv.Load(*path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", *path, err)
		}
		return nil
	}
}

// loadConfiguration binds the flags of the running command to their
// configuration keys, reads the optional file and decodes everything into cfg.
func loadConfiguration(v *viper.Viper, path *string, cfg *config.Configuration) cobrautil.CobraRunFunc {
	return func(cmd *cobra.Command, args []string) error {
		var bindErr error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if keys, ok := f.Annotations[configKeyAnnotation]; ok && bindErr == nil {
				bindErr = v.BindPFlag(keys[0], f)
			}
		})
		if bindErr != nil {
			return bindErr
		}

		// Secrets are only read from the file or the environment.
		if err := v.BindEnv("auth.secret", envPrefix+"_AUTH_SECRET"); err != nil {
			return err
		}
		if err := v.BindEnv("approval.webhooktoken", envPrefix+"_WEBHOOK_TOKEN"); err != nil {
			return err
		}

		if *path != "" {
			v.SetConfigFile(*path)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read configuration file: %w", err)
			}
		}

		if err := v.Unmarshal(cfg); err != nil {
			return fmt.Errorf("failed to decode configuration: %w", err)
		}
		return nil
	}
}

func setupLogging(cfg *config.Configuration) cobrautil.CobraRunFunc {
	return func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cfg.LogFormat, cfg.LogLevel)
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)

		zap.S().Named("cli").Debugw("configuration loaded", "command", cmd.Name(), "config", cfg.DebugMap())
		return nil
	}
}

// newLogger logs to stderr so command output on stdout stays machine readable.
func newLogger(format, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var zcfg zap.Config
	switch format {
	case "json":
		zcfg = zap.NewProductionConfig()
	case "console":
		zcfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	zcfg.Level = lvl
	zcfg.OutputPaths = []string{"stderr"}

	return zcfg.Build()
}

func openStore(ctx context.Context, cfg *config.Configuration) (*store.Store, error) {
	path, err := store.DatabasePath(cfg.Store.DataFolder)
	if err != nil {
		return nil, err
	}

	db, err := store.NewDB(path)
	if err != nil {
		return nil, err
	}

	st := store.NewStore(db)
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	zap.S().Named("cli").Debugw("store opened", "path", path)
	return st, nil
}

// newNotifier posts approval requests to the configured webhook, or logs them
// when none is set.
func newNotifier(cfg config.Approval) services.Notifier {
	if cfg.WebhookURL == "" {
		return services.LogNotifier{}
	}
	return webhook.NewClient(cfg.WebhookURL, cfg.WebhookToken)
}

// newApprovalService signs the approve and propose links when the API requires
// a token, so approvers can follow them.
func newApprovalService(st *store.Store, cfg *config.Configuration) *services.ApprovalService {
	srv := services.NewApprovalService(st, newNotifier(cfg.Approval), cfg.Approval)
	if cfg.Auth.Enabled {
		srv.WithLinkSigner(middlewares.NewTokenSigner(cfg.Auth.Secret, cfg.Approval.LinkTTL))
	}
	return srv
}

func today() time.Time {
	return time.Now()
}
