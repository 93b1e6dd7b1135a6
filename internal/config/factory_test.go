package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "factory.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFactoryMissingFile(t *testing.T) {
	_, err := LoadFactory(filepath.Join(t.TempDir(), "factory.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFactoryInvalidJSON(t *testing.T) {
	path := writeConfig(t, "{not json")
	_, err := LoadFactory(path)
	assert.Error(t, err)
}

func TestVoiceSettingsRoundTrip(t *testing.T) {
	path := writeConfig(t, `{"voice": {"factoryNotifications": false}}`)

	cfg, err := LoadFactory(path)
	require.NoError(t, err)
	require.NoError(t, cfg.SetVoice(NewVoiceSettings(true)))
	require.NoError(t, cfg.Save())

	reloaded, err := LoadFactory(path)
	require.NoError(t, err)
	v, ok := reloaded.Voice()
	require.True(t, ok)
	assert.True(t, v.FactoryNotifications)
	assert.True(t, v.PhaseAnnouncements)
	assert.True(t, v.ProgressUpdates)
	assert.True(t, v.CompletionCelebration)
	assert.True(t, v.PersonalizedMessages)
	assert.Equal(t, 0.7, v.NameUsageRate)
}

func TestNewVoiceSettingsDisabled(t *testing.T) {
	v := NewVoiceSettings(false)
	assert.False(t, v.FactoryNotifications)
	assert.Equal(t, 0.0, v.NameUsageRate)
}

func TestSavePreservesUnknownKeys(t *testing.T) {
	path := writeConfig(t, `{"project": {"name": "demo"}, "voice": {"factoryNotifications": true}}`)

	cfg, err := LoadFactory(path)
	require.NoError(t, err)
	require.NoError(t, cfg.SetVoice(NewVoiceSettings(false)))
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &out))
	assert.JSONEq(t, `{"name": "demo"}`, string(out["project"]))
}

func TestEnabledDefaultsTrue(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"no voice section", `{}`, true},
		{"missing flag", `{"voice": {}}`, true},
		{"explicitly disabled", `{"voice": {"factoryNotifications": false}}`, false},
		{"explicitly enabled", `{"voice": {"factoryNotifications": true}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFactory(writeConfig(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Enabled())
		})
	}
}

func TestVoiceEnabledLenient(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "factory.json")
	assert.True(t, VoiceEnabled(missing, true))
	assert.False(t, VoiceEnabled(missing, false))

	corrupt := writeConfig(t, "][")
	assert.True(t, VoiceEnabled(corrupt, true))

	disabled := writeConfig(t, `{"voice": {"factoryNotifications": false}}`)
	assert.False(t, VoiceEnabled(disabled, true))
}
