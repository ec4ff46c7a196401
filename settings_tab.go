package main

import (
	"os/exec"
	"path/filepath"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/tradeshow-assistant/pkg/logger"
	"github.com/borgmon/tradeshow-assistant/pkg/models"
)

func (pw *PlannerWindow) buildSettingsTab() fyne.CanvasObject {
	cfg := pw.planner.config

	statusLabel := widget.NewLabel("")

	autoStartCheck := widget.NewCheck("Launch at login", nil)
	autoStartCheck.SetChecked(cfg.AutoStart)
	autoStartCheck.OnChanged = func(checked bool) {
		go func() {
			if err := setupAutostart(checked); err != nil {
				logger.Errorw("failed to set autostart", "error", err)
				fyne.Do(func() {
					statusLabel.SetText("Error: failed to set autostart")
					statusLabel.Importance = widget.DangerImportance
					statusLabel.Refresh()
				})
				return
			}
			fyne.Do(func() {
				cfg.AutoStart = checked
				pw.planner.saveConfig()
				statusLabel.SetText("Settings saved")
				statusLabel.Importance = widget.SuccessImportance
				statusLabel.Refresh()
			})
		}()
	}

	viewSelect := widget.NewSelect([]string{agendaLabel, hourlyLabel}, nil)
	if cfg.DefaultView == models.ViewHourly {
		viewSelect.SetSelected(hourlyLabel)
	} else {
		viewSelect.SetSelected(agendaLabel)
	}
	viewSelect.OnChanged = func(selected string) {
		cfg.DefaultView = models.ViewAgenda
		if selected == hourlyLabel {
			cfg.DefaultView = models.ViewHourly
		}
		pw.planner.saveConfig()
	}

	location := pw.storageLocation()
	storageEntry := readOnlyEntry(location)
	openStorageButton := widget.NewButton("Open in File Manager", func() {
		openInFileManager(location)
	})
	if cfg.Storage.Backend == models.BackendMemory {
		openStorageButton.Disable()
	}

	storageHelp := widget.NewLabel("Backend: " + cfg.Storage.Backend + ". Change it in the config file and restart.")
	storageHelp.Wrapping = fyne.TextWrapWord
	storageHelp.Importance = widget.MediumImportance

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Auto Start:"), autoStartCheck,
		widget.NewLabel("Default view:"), viewSelect,
		container.NewVBox(widget.NewLabel("Storage:"), storageHelp),
		container.NewBorder(nil, container.NewPadded(openStorageButton), nil, nil, storageEntry),
		widget.NewLabel("Namespace:"), readOnlyEntry(cfg.Storage.Namespace),
		widget.NewLabel("Config file:"), readOnlyEntry(pw.planner.configPath),
	)

	content := container.NewVBox(
		widget.NewLabel("General Settings"),
		widget.NewSeparator(),
		form,
		statusLabel,
	)

	return container.NewPadded(container.NewVScroll(content))
}

// storageLocation describes where the planner slices live for the configured backend
func (pw *PlannerWindow) storageLocation() string {
	cfg := pw.planner.config.Storage
	switch cfg.Backend {
	case models.BackendBolt:
		return cfg.BoltPath
	case models.BackendMemory:
		return "not persisted"
	default:
		return pw.app.Storage().RootURI().Path()
	}
}

func readOnlyEntry(text string) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(text)
	e.Disable()
	return e
}

func openInFileManager(path string) {
	if filepath.Ext(path) != "" {
		path = filepath.Dir(path)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		logger.Warnw("unsupported OS for file manager", "os", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		logger.Warnw("failed to open file manager", "path", path, "error", err)
	}
}
