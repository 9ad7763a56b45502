package systems

import (
	"encoding/json"

	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk.
// Scores are deliberately absent: a run's score lives only in memory.
type SavedSettings struct {
	Level      int  `json:"level"`
	Fullscreen bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when
// persistence is unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn().Err(err).Msg("could not parse saved settings")
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
		return err
	}
	return nil
}

// StartLevel picks the starting level: the environment override wins, then
// the saved level, then level 1. An out-of-range override is returned as is
// so the word bank rejects it; a stale saved level is ignored.
func StartLevel(envLevel int, saved *SavedSettings, levels int) int {
	if envLevel != 0 {
		return envLevel
	}
	if saved != nil && saved.Level >= 1 && saved.Level <= levels {
		return saved.Level
	}
	return 1
}
