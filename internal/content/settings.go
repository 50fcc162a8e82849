package content

import (
	"errors"

	"github.com/minsu-han/corpsite/internal/database"
	"github.com/minsu-han/corpsite/internal/model"
)

// Settings exposes the rich-text editor configuration stored in the settings
// key/value table.
type Settings struct {
	store database.Store
}

// EditorAPIKey returns the configured editor API key. A key that was never
// saved reads back as an empty string, not an error.
func (s *Settings) EditorAPIKey() (string, error) {
	val, err := s.store.GetSetting(model.SettingEditorAPIKey)
	if errors.Is(err, database.ErrNotFound) {
		return "", nil
	}
	return val, err
}

// SetEditorAPIKey saves the editor API key.
func (s *Settings) SetEditorAPIKey(key string) error {
	return s.store.SetSetting(model.SettingEditorAPIKey, key)
}
