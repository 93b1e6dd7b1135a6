// Package voicectl implements the user-facing voice control command. Unlike
// the hooks it fails loudly: a missing or broken configuration file is a
// diagnostic and a non-zero exit, not a silent default.
package voicectl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"echofactory/internal/cli/scheme/colours"
	"echofactory/internal/config"
)

// Controller drives the enable/disable/toggle/status modes against one
// configuration file, writing human-readable feedback to Out.
type Controller struct {
	Path string
	Out  io.Writer
}

func New(path string, out io.Writer) *Controller {
	return &Controller{Path: path, Out: out}
}

// SetState sets every voice flag to enabled and persists the result.
func (c *Controller) SetState(enabled bool) error {
	cfg, err := c.load()
	if err != nil {
		return err
	}

	if err := cfg.SetVoice(config.NewVoiceSettings(enabled)); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		colours.Error.Fprintf(c.Out, "❌ %v\n", err)
		fmt.Fprintf(c.Out, "🔧 Please check permissions for %s\n", c.Path)
		return err
	}

	c.printSummary(enabled)
	return nil
}

// Toggle inverts the current state and delegates to SetState.
func (c *Controller) Toggle() error {
	cfg, err := c.load()
	if err != nil {
		return err
	}

	newState := !cfg.Enabled()
	if err := c.SetState(newState); err != nil {
		return err
	}

	if newState {
		colours.Hint.Fprintln(c.Out, "💡 Use /voice-toggle again to disable")
	} else {
		colours.Hint.Fprintln(c.Out, "💡 Use /voice-toggle again to enable")
	}
	fmt.Fprintln(c.Out)
	return nil
}

// Status reports the current state without changing it.
func (c *Controller) Status() error {
	cfg, err := c.load()
	if err != nil {
		return err
	}

	fmt.Fprintln(c.Out)
	if cfg.Enabled() {
		colours.Success.Fprintln(c.Out, "🔊 Voice announcements are currently ENABLED")
		fmt.Fprintln(c.Out, "✅ Factory operations will include voice feedback")
	} else {
		colours.Warning.Fprintln(c.Out, "🔇 Voice announcements are currently DISABLED")
		fmt.Fprintln(c.Out, "❌ Factory operations will be silent")
	}
	fmt.Fprintln(c.Out)
	return nil
}

func (c *Controller) load() (*config.FactoryConfig, error) {
	cfg, err := config.LoadFactory(c.Path)
	if err == nil {
		return cfg, nil
	}

	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, os.ErrNotExist):
		colours.Error.Fprintln(c.Out, "❌ Factory configuration not found")
		fmt.Fprintf(c.Out, "   Expected: %s\n", c.Path)
		colours.Hint.Fprintln(c.Out, "💡 Please run /start-project first to initialize the factory")
	case errors.As(err, &syntaxErr):
		colours.Error.Fprintf(c.Out, "❌ Invalid JSON in factory configuration: %v\n", err)
		fmt.Fprintf(c.Out, "🔧 Please check %s\n", c.Path)
	default:
		colours.Error.Fprintf(c.Out, "❌ Failed to read factory configuration: %v\n", err)
	}
	return nil, err
}

func (c *Controller) printSummary(enabled bool) {
	fmt.Fprintln(c.Out)
	if enabled {
		colours.Success.Fprintln(c.Out, "🔊 Voice announcements ENABLED")
		fmt.Fprintln(c.Out)
		fmt.Fprintln(c.Out, "✅ Factory notifications will be announced")
		fmt.Fprintln(c.Out, "✅ Progress updates will be spoken")
		fmt.Fprintln(c.Out, "✅ Completion celebrations will play")
		fmt.Fprintln(c.Out, "✅ Personalized messages active")
		fmt.Fprintln(c.Out)
		colours.Prompt.Fprintln(c.Out, "🎯 Perfect for engaging factory experience!")
		fmt.Fprintln(c.Out)
		colours.Hint.Fprintln(c.Out, "💡 Use /voice-toggle to disable voice features")
	} else {
		colours.Warning.Fprintln(c.Out, "🔇 Voice announcements DISABLED")
		fmt.Fprintln(c.Out)
		fmt.Fprintln(c.Out, "❌ Factory notifications silenced")
		fmt.Fprintln(c.Out, "❌ Progress updates muted")
		fmt.Fprintln(c.Out, "❌ Completion celebrations off")
		fmt.Fprintln(c.Out, "❌ Personalized messages disabled")
		fmt.Fprintln(c.Out)
		colours.Prompt.Fprintln(c.Out, "🤫 Perfect for quiet work environments!")
		fmt.Fprintln(c.Out)
		colours.Hint.Fprintln(c.Out, "💡 Use /voice-toggle to enable voice features")
	}
	fmt.Fprintln(c.Out, "⚙️ Changes take effect immediately for new operations")
	fmt.Fprintln(c.Out)
}
