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

// FactoryHook announces factory phase transitions gleaned from TodoWrite
// events. Unlike the plain notification hook it runs the full backend
// cascade, so a dead cloud backend never silences a phase announcement while
// a local engine is installed.
type FactoryHook struct {
	Announce   bool // --factory
	ScriptDir  string
	ConfigPath string
	Name       string
	Timeout    time.Duration // per cascade attempt

	gen *factory.Generator
}

func NewFactoryHook(announce bool) *FactoryHook {
	return &FactoryHook{
		Announce:   announce,
		ScriptDir:  config.ScriptDir(),
		ConfigPath: config.FactoryConfigPath(),
		Name:       config.EngineerName(),
		Timeout:    config.CascadeTimeout(),
		gen:        factory.NewGenerator(),
	}
}

// Run processes one event from stdin. Always returns nil; this hook must
// never affect the calling workflow's exit status.
func (h *FactoryHook) Run(stdin io.Reader) error {
	if !h.Announce {
		return nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil
	}

	var ev factory.Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil
	}

	ann, ok := factory.ShouldAnnounce(ev)
	if !ok {
		return nil
	}

	if !config.VoiceEnabled(h.ConfigPath, true) {
		return nil
	}

	message := h.gen.Message(ann.Phase, h.Name, ann.Completed)
	if message == "" {
		return nil
	}

	backends := tts.Cascade(h.ScriptDir)
	if err := tts.SpeakFirst(context.Background(), backends, message, h.Timeout); err != nil {
		logrus.WithError(err).Debug("factory announcement TTS failed")
	}
	return nil
}
