package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/motodash/internal/config"
	"github.com/five82/motodash/internal/moto"
	"github.com/five82/motodash/internal/prefs"
	"github.com/five82/motodash/internal/state"
	"github.com/five82/motodash/internal/ui"
)

// Options configure the dashboard.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/motodash/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
	APIBind    string // overrides api_bind when set
}

// LoadConfig reads the config file and applies the option overrides.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if api := strings.TrimSpace(opts.APIBind); api != "" {
		cfg.APIBind = api
	}
	if opts.PollEvery > 0 {
		cfg.PollEvery = time.Duration(opts.PollEvery) * time.Second
	}
	return cfg, nil
}

// Run boots the TUI until the context is cancelled or the operator quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Printf("prefs: %v (using defaults)", err)
	}

	client, err := moto.NewClient(cfg.APIBind)
	if err != nil {
		return fmt.Errorf("init device client: %w", err)
	}
	log.Printf("motodash starting against %s", client.BaseURL())

	store := &state.Store{}

	// Start background poller
	StartPoller(ctx, store, client, cfg.PollEvery)

	// Do initial refresh to populate store before UI starts
	_ = refresh(ctx, store, client)

	uiOpts := ui.Options{
		Context:   ctx,
		API:       client,
		Store:     store,
		Config:    &cfg,
		PollTick:  time.Second,
		ThemeName: userPrefs.Theme,
		Mouse:     userPrefs.Mouse,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// openLog sends the standard logger to path while the TUI owns the terminal.
func openLog(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "motodash")
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
