package store

import (
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/borgmon/tradeshow-assistant/pkg/models"
)

// Open returns the byte store selected by cfg and a function releasing it
func Open(cfg models.StorageConfig, prefs fyne.Preferences) (ByteStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case models.BackendBolt:
		if cfg.BoltPath == "" {
			return nil, noop, fmt.Errorf("bolt backend needs storage.bolt_path")
		}
		bs, err := OpenBoltStore(cfg.BoltPath)
		if err != nil {
			return nil, noop, err
		}
		return bs, bs.Close, nil
	case models.BackendMemory:
		return NewMemoryStore(), noop, nil
	default:
		if prefs == nil {
			return nil, noop, fmt.Errorf("preferences backend needs an application with an ID")
		}
		return NewPrefsStore(prefs), noop, nil
	}
}
