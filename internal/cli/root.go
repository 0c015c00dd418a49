// Package cli wires the airport services commands on top of cobra.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikolayk812/airport-services/internal/catalog"
	"github.com/nikolayk812/airport-services/internal/config"
	"github.com/nikolayk812/airport-services/internal/logger"
)

// rootOptions holds the persistent flags shared by all commands.
type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCmd builds the airport-services command tree. Running it without a
// subcommand starts the interactive terminal UI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "airport-services",
		Short: "Pick airport services and place an order",
		Long: `Browse the airport services catalog, collect services into a cart
and place an order.

Without a subcommand the interactive terminal UI is started.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.airport-services/config.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	cmd.AddCommand(
		newTUICmd(opts),
		newCatalogCmd(opts),
		newOrderCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// runtime is what every command needs once config is resolved.
type runtime struct {
	cfg     config.Config
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func newRuntime(opts *rootOptions, interactive bool) (*runtime, error) {
	path := opts.configPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("config.DefaultPath: %w", err)
		}
		path = defaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	cur, err := cfg.CurrencyUnit()
	if err != nil {
		return nil, fmt.Errorf("cfg.CurrencyUnit: %w", err)
	}

	logCfg := cfg.Log
	if interactive && logCfg.File == "" {
		logCfg.File = logger.TUIFallbackFile()
	}

	log, err := logger.New(logCfg, opts.verbose)
	if err != nil {
		return nil, fmt.Errorf("logger.New: %w", err)
	}

	return &runtime{
		cfg:     cfg,
		catalog: catalog.Default(cur),
		logger:  log,
	}, nil
}

func (r *runtime) close() {
	// stderr cannot be synced on most platforms
	_ = r.logger.Sync()
}
