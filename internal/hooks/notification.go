// Package hooks implements the hook entry points themselves. They are
// best-effort side channels: every failure is logged and swallowed so the
// calling workflow never sees a non-zero exit.
package hooks

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"echofactory/internal/config"
	"echofactory/internal/factory"
	"echofactory/internal/tts"
)

// The agent emits this message on every idle poll; announcing it would be
// pure noise, so it is skipped by exact match.
const waitingMessage = "Claude is waiting for your input"

// NotificationHook logs incoming events and, when asked to, speaks an
// "input needed" announcement through the single best available backend.
type NotificationHook struct {
	Announce   bool // --notify
	LogDir     string
	ScriptDir  string
	ConfigPath string
	Name       string
	Timeout    time.Duration

	gen *factory.Generator
}

func NewNotificationHook(announce bool) *NotificationHook {
	return &NotificationHook{
		Announce:   announce,
		LogDir:     config.LogDir(),
		ScriptDir:  config.ScriptDir(),
		ConfigPath: config.FactoryConfigPath(),
		Name:       config.EngineerName(),
		Timeout:    config.NotifyTimeout(),
		gen:        factory.NewGenerator(),
	}
}

// Run processes one event from stdin. It always returns nil: malformed input
// is a silent no-op and downstream failures are swallowed.
func (h *NotificationHook) Run(stdin io.Reader) error {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	if err := appendEventLog(h.LogDir, raw); err != nil {
		logrus.WithError(err).Warn("failed to append event log")
		return nil
	}

	if !h.Announce {
		return nil
	}

	var ev factory.Event
	if err := json.Unmarshal(data, &ev); err != nil || ev.Message == waitingMessage {
		return nil
	}

	h.announce()
	return nil
}

func (h *NotificationHook) announce() {
	if !config.VoiceEnabled(h.ConfigPath, true) {
		return
	}

	backend, ok := tts.BestAvailable(h.ScriptDir)
	if !ok {
		return
	}

	message := h.gen.Notification(h.Name)

	// Single attempt, no fallback: plain notifications are low stakes.
	ctx, cancel := context.WithTimeout(context.Background(), h.Timeout)
	defer cancel()
	if err := backend.Speak(ctx, message); err != nil {
		logrus.WithError(err).Debug("notification TTS failed")
	}
}
