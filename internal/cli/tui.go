package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/config"
	"github.com/Casper-hue/api-watchdog/internal/ui"
	"github.com/Casper-hue/api-watchdog/internal/ui/overlays"
	"github.com/Casper-hue/api-watchdog/internal/watcher"
)

const configPollInterval = 2 * time.Second

func runTUI(ctx context.Context, e *env, exportDir string) error {
	app := ui.NewApp(ui.Options{
		Config:     e.cfg,
		ConfigPath: e.cfgPath,
		ExportDir:  exportDir,
		Client:     e.client,
		NewClient: func(cfg config.Config) (*api.Client, error) {
			return newClient(cfg, e.log.SugaredLogger, e.metrics)
		},
		Translator: e.tr,
		Logger:     e.log.SugaredLogger,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if ctx != nil {
		opts = append(opts, tea.WithContext(ctx))
	}
	p := tea.NewProgram(app, opts...)

	w := watcher.New([]string{e.cfgPath}, configPollInterval, func(path string) {
		cfg, err := loadConfig(path, e.opts)
		if err != nil {
			e.log.Warnw("reloaded config rejected", "path", path, "error", err)
			return
		}
		if err := e.log.SetLevel(cfg.Log.Level); err != nil {
			e.log.Warnw("reload log level", "level", cfg.Log.Level, "error", err)
		}
		e.log.Infow("config changed", "path", path)
		p.Send(overlays.ConfigChangedMsg{Config: cfg})
	})
	w.Snapshot()
	if err := w.Start(); err != nil {
		e.log.Warnw("config watcher disabled", "error", err)
	}
	defer w.Stop()

	e.log.Infow("starting dashboard", "base_url", e.cfg.Server.BaseURL, "config", e.cfgPath)
	_, err := p.Run()
	return err
}
