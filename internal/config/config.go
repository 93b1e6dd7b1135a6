package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func SetDefaults() {
	home, _ := os.UserHomeDir()

	viper.SetDefault("factory.config_path", filepath.Join(home, ".claude", "config", "factory.json"))
	viper.SetDefault("tts.script_dir", filepath.Join(home, ".claude", "hooks", "utils", "tts"))
	viper.SetDefault("tts.notify_timeout", 10*time.Second)
	viper.SetDefault("tts.cascade_timeout", 15*time.Second)
	viper.SetDefault("log.dir", "logs")

	viper.BindEnv("engineer.name", "ENGINEER_NAME")
}

// FactoryConfigPath is where the persisted voice configuration lives.
func FactoryConfigPath() string {
	return viper.GetString("factory.config_path")
}

// ScriptDir is the directory holding the TTS backend scripts.
func ScriptDir() string {
	return viper.GetString("tts.script_dir")
}

func NotifyTimeout() time.Duration {
	return viper.GetDuration("tts.notify_timeout")
}

func CascadeTimeout() time.Duration {
	return viper.GetDuration("tts.cascade_timeout")
}

func LogDir() string {
	return viper.GetString("log.dir")
}

// EngineerName returns the display name used for personalized messages,
// or "" when none is configured.
func EngineerName() string {
	return strings.TrimSpace(viper.GetString("engineer.name"))
}
