package store

import (
	"encoding/json"
	"errors"

	"github.com/borgmon/tradeshow-assistant/pkg/logger"
)

// ErrNotFound is returned by a ByteStore when a key holds no value
var ErrNotFound = errors.New("store: key not found")

// ByteStore is a key-value store of raw bytes
type ByteStore interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// Slice names, one key each
const (
	SliceMeetings  = "meetings"
	SliceTravel    = "travel"
	SliceAssistant = "gptUrl"
)

// Key joins the namespace and a slice name
func Key(namespace, slice string) string {
	return namespace + ":" + slice
}

// Load decodes the JSON value under key. A missing key, a read failure or a
// value that does not decode all yield def.
func Load[T any](s ByteStore, key string, def T) T {
	raw, err := s.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warnw("storage read failed, using default", "key", key, "error", err)
		}
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warnw("stored value is corrupt, using default", "key", key, "error", err)
		return def
	}
	return v
}

// Save encodes v as JSON under key. Failures are logged and dropped.
func Save[T any](s ByteStore, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		logger.Warnw("failed to encode value", "key", key, "error", err)
		return
	}
	if err := s.Put(key, raw); err != nil {
		logger.Warnw("storage write failed", "key", key, "error", err)
	}
}
