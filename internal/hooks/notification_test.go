package hooks

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echofactory/internal/factory"
)

func newTestNotificationHook(t *testing.T, announce bool) *NotificationHook {
	t.Helper()
	return &NotificationHook{
		Announce:   announce,
		LogDir:     t.TempDir(),
		ScriptDir:  t.TempDir(), // no backend scripts: announcements are no-ops
		ConfigPath: filepath.Join(t.TempDir(), "factory.json"),
		Timeout:    time.Second,
		gen:        factory.NewGenerator(),
	}
}

func readLog(t *testing.T, dir string) []json.RawMessage {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, eventLogName))
	require.NoError(t, err)

	var entries []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &entries))
	return entries
}

func TestNotificationMalformedInput(t *testing.T) {
	h := newTestNotificationHook(t, false)

	err := h.Run(strings.NewReader("{not json"))
	assert.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(h.LogDir, eventLogName))
	assert.True(t, os.IsNotExist(statErr), "malformed input must not touch the log")
}

func TestNotificationAppendsToLog(t *testing.T) {
	h := newTestNotificationHook(t, false)

	require.NoError(t, h.Run(strings.NewReader(`{"message": "first"}`)))
	require.NoError(t, h.Run(strings.NewReader(`{"message": "second"}`)))

	entries := readLog(t, h.LogDir)
	require.Len(t, entries, 2)
	assert.JSONEq(t, `{"message": "first"}`, string(entries[0]))
	assert.JSONEq(t, `{"message": "second"}`, string(entries[1]))
}

func TestNotificationRecoversCorruptLog(t *testing.T) {
	h := newTestNotificationHook(t, false)
	require.NoError(t, os.WriteFile(filepath.Join(h.LogDir, eventLogName), []byte("]["), 0o644))

	require.NoError(t, h.Run(strings.NewReader(`{"message": "hello"}`)))

	entries := readLog(t, h.LogDir)
	assert.Len(t, entries, 1)
}

func TestNotificationLogsNonObjectPayloads(t *testing.T) {
	h := newTestNotificationHook(t, false)

	require.NoError(t, h.Run(strings.NewReader(`[1, 2, 3]`)))

	entries := readLog(t, h.LogDir)
	require.Len(t, entries, 1)
	assert.JSONEq(t, `[1, 2, 3]`, string(entries[0]))
}

func TestNotificationAnnouncePathStaysSilent(t *testing.T) {
	// With no backend scripts installed the announce branch must still log
	// the event and return nil.
	h := newTestNotificationHook(t, true)

	err := h.Run(strings.NewReader(`{"message": "permission needed"}`))
	assert.NoError(t, err)
	assert.Len(t, readLog(t, h.LogDir), 1)
}

func TestNotificationSkipsGenericWaitingMessage(t *testing.T) {
	h := newTestNotificationHook(t, true)

	err := h.Run(strings.NewReader(`{"message": "Claude is waiting for your input"}`))
	assert.NoError(t, err)
	// Still logged, just not announced.
	assert.Len(t, readLog(t, h.LogDir), 1)
}
