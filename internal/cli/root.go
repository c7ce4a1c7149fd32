// Package cli contains the cobra commands for keeper.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/example/keeper/internal/config"
	"github.com/example/keeper/internal/wire"
)

// runtime carries what PersistentPreRunE builds for the subcommands.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	session *wire.Session
}

// sessionContext returns the command context tagged with the session ID.
func (rt *runtime) sessionContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return rt.session.Context(ctx)
}

// NewRootCmd builds the keeper command tree.
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

// Execute runs keeper with args. The session is released however the
// command ends; cobra skips PersistentPostRunE when RunE fails.
func Execute(ctx context.Context, args []string, version string) error {
	rootCmd, rt := newRootCmd()
	rootCmd.Version = version
	rootCmd.SetArgs(args)
	return execute(ctx, rootCmd, rt)
}

func execute(ctx context.Context, rootCmd *cobra.Command, rt *runtime) (err error) {
	defer func() {
		err = errors.Join(err, rt.close())
	}()
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() (*cobra.Command, *runtime) {
	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:   "keeper",
		Short: "keeper - wildlife conservation and store inventory records",
		Long: `keeper tracks endangered species and store inventory as in-memory record
collections. Every run starts from the built-in records; changes last for the
session only.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return rt.finish(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("config", "", "Config file (default .keeper/config.yaml in the working directory)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("metrics", false, "Print operation metrics after the command")

	rootCmd.AddCommand(SpeciesCmd(rt))
	rootCmd.AddCommand(InventoryCmd(rt))
	rootCmd.AddCommand(ConfigCmd(rt))

	return rootCmd, rt
}

func (rt *runtime) init(cmd *cobra.Command) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	configPath, _ := cmd.Flags().GetString("config")
	noColor, _ := cmd.Flags().GetBool("no-color")
	withMetrics, _ := cmd.Flags().GetBool("metrics")

	if configPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = config.DefaultPath(cwd)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if noColor {
		cfg.Color = false
	}
	if withMetrics {
		cfg.Metrics = true
	}
	if !cfg.Color {
		color.NoColor = true
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	logger, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	session, err := wire.NewSession(cfg, logger)
	if err != nil {
		return err
	}

	rt.cfg = cfg
	rt.logger = logger
	rt.session = session
	rt.logger.Debug("session started",
		zap.String("session", session.ID),
		zap.String("config", configPath),
		zap.String("command", cmd.CommandPath()))
	return nil
}

func (rt *runtime) finish(cmd *cobra.Command) (err error) {
	if rt.session == nil {
		return nil
	}
	defer func() {
		err = errors.Join(err, rt.close())
	}()

	if rt.cfg.Metrics {
		return rt.session.WriteMetrics(cmd.OutOrStdout())
	}
	return nil
}

// close releases the session and flushes the logger. It is safe to call twice.
func (rt *runtime) close() error {
	if rt.session == nil {
		return nil
	}
	err := rt.session.Close()
	_ = rt.logger.Sync()
	rt.session = nil
	return err
}
