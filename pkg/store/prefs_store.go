package store

import "fyne.io/fyne/v2"

// PrefsStore keeps values in the fyne application preferences
type PrefsStore struct {
	prefs fyne.Preferences
}

// NewPrefsStore creates a PrefsStore over the given preferences
func NewPrefsStore(prefs fyne.Preferences) *PrefsStore {
	return &PrefsStore{prefs: prefs}
}

// Get returns the string stored under key. Preferences cannot tell an empty
// string from a missing one, so both report ErrNotFound.
func (ps *PrefsStore) Get(key string) ([]byte, error) {
	v := ps.prefs.String(key)
	if v == "" {
		return nil, ErrNotFound
	}
	return []byte(v), nil
}

func (ps *PrefsStore) Put(key string, value []byte) error {
	ps.prefs.SetString(key, string(value))
	return nil
}
