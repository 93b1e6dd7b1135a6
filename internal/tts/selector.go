package tts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrNoBackend is returned when every candidate backend failed or none was
// available to begin with.
var ErrNoBackend = errors.New("no TTS backend available")

// The candidate backends in priority order: ElevenLabs, then OpenAI, then
// the local pyttsx3 engine which needs no credentials.
var catalogue = []struct {
	name   string
	script string
	keyEnv string
}{
	{"elevenlabs", "elevenlabs_tts.py", "ELEVENLABS_API_KEY"},
	{"openai", "openai_tts.py", "OPENAI_API_KEY"},
	{"pyttsx3", "pyttsx3_tts.py", ""},
}

// BestAvailable picks the single best backend: the first one in priority
// order whose API key is set (when it needs one) and whose script exists
// under dir. Used for plain notifications, which make one attempt and do not
// fall back.
func BestAvailable(dir string) (Backend, bool) {
	for _, c := range catalogue {
		if c.keyEnv != "" && os.Getenv(c.keyEnv) == "" {
			continue
		}
		script := filepath.Join(dir, c.script)
		if scriptExists(script) {
			return Backend{Name: c.name, Script: script}, true
		}
	}
	return Backend{}, false
}

// Cascade returns every backend whose script exists under dir, in priority
// order, without looking at credentials. Each script detects its own missing
// API key and fails, advancing the cascade to the next candidate.
func Cascade(dir string) []Backend {
	var backends []Backend
	for _, c := range catalogue {
		script := filepath.Join(dir, c.script)
		if scriptExists(script) {
			backends = append(backends, Backend{Name: c.name, Script: script})
		}
	}
	return backends
}

// SpeakFirst tries each backend in order with a fresh deadline per attempt
// and stops at the first success.
func SpeakFirst(ctx context.Context, backends []Backend, text string, timeout time.Duration) error {
	for _, b := range backends {
		attempt, cancel := context.WithTimeout(ctx, timeout)
		err := b.Speak(attempt, text)
		cancel()
		if err == nil {
			return nil
		}
		logrus.WithError(err).WithField("backend", b.Name).Debug("TTS backend failed, trying next")
	}
	return ErrNoBackend
}

func scriptExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
