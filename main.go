package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/borgmon/tradeshow-assistant/pkg/logger"
	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/borgmon/tradeshow-assistant/pkg/store"
)

const (
	appID   = "com.borgmon.tradeshow-assistant"
	appName = "tradeshow-assistant"
)

type Planner struct {
	app        fyne.App
	configPath string
	config     *models.Config
	store      *store.PlannerStore
	closeStore func() error
	window     *PlannerWindow
}

func main() {
	configPath := flag.String("config", defaultPath("config.yaml"), "Path to config file")
	flag.Parse()

	p := &Planner{
		app:        app.NewWithID(appID),
		configPath: *configPath,
	}

	if err := p.initialize(time.Now()); err != nil {
		logger.Errorw("failed to start", "error", err)
		logger.Sync()
		os.Exit(1)
	}

	p.run()
}

func (p *Planner) initialize(now time.Time) error {
	cfg, err := store.LoadConfig(p.configPath)
	if err != nil {
		if cfg == nil {
			return err
		}
		logger.Warnw("failed to write default config", "path", p.configPath, "error", err)
	}
	p.config = cfg

	logger.Init(logger.OptionLevel(logger.ParseLevel(cfg.LogLevel)))
	logger.Infow("tradeshow assistant starting",
		"config_path", p.configPath,
		"backend", cfg.Storage.Backend,
		"namespace", cfg.Storage.Namespace,
	)

	if cfg.Storage.Backend == models.BackendBolt && cfg.Storage.BoltPath == "" {
		cfg.Storage.BoltPath = defaultPath("data.bolt")
	}

	kv, closeStore, err := store.Open(cfg.Storage, p.app.Preferences())
	if err != nil {
		return err
	}
	p.closeStore = closeStore

	var seed store.Seed
	if cfg.SeedSampleData {
		seed = store.Seed{
			Meetings: models.SampleMeetings(now),
			Travel:   models.SampleTravel(now),
		}
	}
	p.store = store.NewPlannerStore(kv, cfg.Storage.Namespace, seed)

	// Sync autostart state with config on startup
	if err := setupAutostart(cfg.AutoStart); err != nil {
		logger.Warnw("failed to setup autostart", "error", err)
	}

	p.window = NewPlannerWindow(p, initialActiveDate(cfg, now))
	p.setupSystemTray()
	p.store.OnChange(func(slice string) {
		if slice == store.SliceMeetings {
			fyne.Do(p.updateSystemTrayMenu)
		}
	})

	return nil
}

func (p *Planner) run() {
	p.app.Lifecycle().SetOnStopped(p.shutdown)
	p.window.Show()
	p.app.Run()
}

func (p *Planner) saveConfig() {
	if err := store.SaveConfig(p.configPath, p.config); err != nil {
		logger.Errorw("failed to save config", "path", p.configPath, "error", err)
	}
}

func (p *Planner) shutdown() {
	if p.closeStore != nil {
		if err := p.closeStore(); err != nil {
			logger.Warnw("failed to close store", "error", err)
		}
	}
	logger.Infow("tradeshow assistant exiting")
	logger.Sync()
}

func (p *Planner) quit() {
	p.app.Quit()
}

// initialActiveDate opens on the sample show day when sample data is enabled
func initialActiveDate(cfg *models.Config, now time.Time) time.Time {
	if cfg.SeedSampleData {
		return models.SampleShowDate(now)
	}
	return now
}

func defaultPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, appName, name)
}
