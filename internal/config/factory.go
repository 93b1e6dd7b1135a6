package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// VoiceSettings are the persisted voice feature flags. The five booleans are
// always set together; NameUsageRate is 0.7 when enabled and 0.0 when not.
type VoiceSettings struct {
	FactoryNotifications  bool    `json:"factoryNotifications"`
	PhaseAnnouncements    bool    `json:"phaseAnnouncements"`
	ProgressUpdates       bool    `json:"progressUpdates"`
	CompletionCelebration bool    `json:"completionCelebration"`
	PersonalizedMessages  bool    `json:"personalizedMessages"`
	NameUsageRate         float64 `json:"nameUsageRate"`
}

// NewVoiceSettings returns the settings for a given enabled state.
func NewVoiceSettings(enabled bool) VoiceSettings {
	rate := 0.0
	if enabled {
		rate = 0.7
	}
	return VoiceSettings{
		FactoryNotifications:  enabled,
		PhaseAnnouncements:    enabled,
		ProgressUpdates:       enabled,
		CompletionCelebration: enabled,
		PersonalizedMessages:  enabled,
		NameUsageRate:         rate,
	}
}

// FactoryConfig is the factory.json configuration file. The factory writes
// other top-level sections into the same file, so everything outside "voice"
// is carried through untouched.
type FactoryConfig struct {
	path string
	raw  map[string]json.RawMessage
}

// LoadFactory reads the configuration file at path. A missing file,
// unreadable file, or invalid JSON is an error; hooks that want lenient
// behaviour use VoiceEnabled instead.
func LoadFactory(path string) (*FactoryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read factory configuration: %w", err)
	}

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse factory configuration: %w", err)
	}

	return &FactoryConfig{path: path, raw: raw}, nil
}

// Path returns the file the configuration was loaded from.
func (c *FactoryConfig) Path() string {
	return c.path
}

// Voice returns the voice settings, reporting whether a valid voice section
// was present.
func (c *FactoryConfig) Voice() (VoiceSettings, bool) {
	data, ok := c.raw["voice"]
	if !ok {
		return VoiceSettings{}, false
	}

	var v VoiceSettings
	if err := json.Unmarshal(data, &v); err != nil {
		return VoiceSettings{}, false
	}
	return v, true
}

// Enabled reports whether factory notifications are on. A missing or
// malformed voice section counts as enabled, matching the hooks' default.
func (c *FactoryConfig) Enabled() bool {
	data, ok := c.raw["voice"]
	if !ok {
		return true
	}

	var v struct {
		FactoryNotifications *bool `json:"factoryNotifications"`
	}
	if err := json.Unmarshal(data, &v); err != nil || v.FactoryNotifications == nil {
		return true
	}
	return *v.FactoryNotifications
}

// SetVoice replaces the voice section.
func (c *FactoryConfig) SetVoice(v VoiceSettings) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode voice settings: %w", err)
	}
	c.raw["voice"] = data
	return nil
}

// Save rewrites the whole configuration file.
func (c *FactoryConfig) Save() error {
	data, err := json.MarshalIndent(c.raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encode factory configuration: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("save factory configuration: %w", err)
	}
	return nil
}

// VoiceEnabled is the lenient read used by the hooks: any failure to read or
// parse the configuration yields def rather than an error.
func VoiceEnabled(path string, def bool) bool {
	if _, err := os.Stat(path); err != nil {
		return def
	}

	cfg, err := LoadFactory(path)
	if err != nil {
		logrus.WithError(err).Debug("voice config unreadable, using default")
		return def
	}
	return cfg.Enabled()
}
