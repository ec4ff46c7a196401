package main

import (
	"os"
	"path/filepath"

	"github.com/borgmon/tradeshow-assistant/pkg/logger"
	"github.com/emersion/go-autostart"
)

func launcher() (*autostart.App, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	return &autostart.App{
		Name:        appName,
		DisplayName: "Tradeshow Assistant",
		Exec:        []string{execPath},
	}, nil
}

func setupAutostart(enable bool) error {
	app, err := launcher()
	if err != nil {
		return err
	}

	switch {
	case enable && !app.IsEnabled():
		if err := app.Enable(); err != nil {
			return err
		}
		logger.Infow("autostart enabled")
	case !enable && app.IsEnabled():
		if err := app.Disable(); err != nil {
			return err
		}
		logger.Infow("autostart disabled")
	}

	return nil
}
