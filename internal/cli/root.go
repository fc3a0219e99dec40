// Package cli wires the api-watchdog command line: the root command runs
// the dashboard TUI, subcommands print single resources for scripting.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/config"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/logging"
)

type rootOptions struct {
	cfgFile     string
	logLevel    string
	metricsAddr string
	output      string
	exportDir   string
}

// env is what every command needs once flags and config are resolved.
type env struct {
	cfg     config.Config
	cfgPath string
	log     *logging.Logger
	client  *api.Client
	metrics *api.Metrics
	tr      *i18n.Translator
	out     printer
	opts    *rootOptions

	stopMetrics func()
}

func (e *env) close() {
	if e.stopMetrics != nil {
		e.stopMetrics()
	}
	_ = e.log.Close()
}

// Execute runs the root command. Errors are printed by cobra.
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "api-watchdog",
		Short:        "LLM API spend dashboard",
		Long:         `A terminal dashboard for the API watchdog backend: spend against budget, per-model costs, projects and warnings.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts, true)
			if err != nil {
				return err
			}
			defer e.close()
			return runTUI(cmd.Context(), e, opts.exportDir)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/api-watchdog/config.toml)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	pf.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9100")
	pf.StringVarP(&opts.output, "output", "o", "table", "output format: table, json, yaml")
	root.Flags().StringVar(&opts.exportDir, "export-dir", ".", "directory CSV exports are written to")

	root.AddCommand(
		newSummaryCmd(opts),
		newStatsCmd(opts),
		newProjectsCmd(opts),
		newActivityCmd(opts),
		newWarningsCmd(opts),
		newFeedbackCmd(opts),
		newSettingsCmd(opts),
		newPrefsCmd(opts),
		newExportCmd(opts),
		newVersionCmd(version),
	)
	return root
}

// setup loads config, builds the logger and the backend client. The TUI
// logs to a file because the alt screen owns the terminal.
func setup(cmd *cobra.Command, opts *rootOptions, tui bool) (*env, error) {
	out, err := newPrinter(cmd.OutOrStdout(), opts.output)
	if err != nil {
		return nil, err
	}

	path := opts.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := loadConfig(path, opts)
	if err != nil {
		return nil, err
	}

	var log *logging.Logger
	if tui {
		file := cfg.Log.File
		if file == "" {
			file = config.DefaultLogPath()
		}
		log, err = logging.Open(cfg.Log.Level, file)
	} else {
		log, err = logging.New(cfg.Log.Level, cmd.ErrOrStderr())
	}
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	e := &env{
		cfg:     cfg,
		cfgPath: path,
		log:     log,
		metrics: api.NewMetrics(reg),
		tr:      i18n.New(i18n.ParseLanguage(cfg.General.Language)),
		out:     out,
		opts:    opts,
	}

	e.client, err = newClient(cfg, log.SugaredLogger, e.metrics)
	if err != nil {
		_ = log.Close()
		return nil, err
	}

	if cfg.Metrics.Addr != "" {
		e.stopMetrics = serveMetrics(cfg.Metrics.Addr, reg, log.SugaredLogger, cmd.ErrOrStderr())
	}
	return e, nil
}

// loadConfig reads path and applies command line overrides on top. The
// TUI calls it again on every hot reload.
func loadConfig(path string, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.metricsAddr != "" {
		cfg.Metrics.Addr = opts.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func newClient(cfg config.Config, log *zap.SugaredLogger, m *api.Metrics) (*api.Client, error) {
	return api.New(cfg.Server.BaseURL,
		api.WithRetryPolicy(cfg.RetryPolicy()),
		api.WithRateLimit(cfg.Server.RateLimit, 1),
		api.WithMetrics(m),
		api.WithLogger(log),
		api.WithLanguage(i18n.ParseLanguage(cfg.General.Language).AcceptLanguage()),
	)
}

// serveMetrics exposes reg on addr until the returned stop func is called.
func serveMetrics(addr string, reg *prometheus.Registry, log *zap.SugaredLogger, stderr io.Writer) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("metrics endpoint stopped", "addr", addr, "error", err)
			fmt.Fprintf(stderr, "metrics endpoint %s: %v\n", addr, err)
		}
	}()
	log.Infow("serving metrics", "addr", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// requestContext bounds a single CLI command's backend calls.
func requestContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, time.Minute)
}
