// Package tts selects and invokes the external text-to-speech backend
// scripts used by the factory hooks. The scripts themselves own credential
// handling and audio playback; this package only decides which of them to
// run and runs it.
package tts

import (
	"context"
	"fmt"
	"os/exec"
)

// Scripts are executed through uv so their inline dependency metadata is
// resolved on the fly.
const runner = "uv"

// Backend is a single runnable TTS script.
type Backend struct {
	Name   string
	Script string // absolute path to the script
}

// Speak runs the backend script with the given text. The context carries the
// caller's deadline; a non-zero exit, a launch failure, or an expired
// deadline all surface as errors.
func (b Backend) Speak(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, runner, "run", b.Script, text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s backend: %w", b.Name, err)
	}
	return nil
}
