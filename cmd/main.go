package main

import (
	"os"

	"echofactory/internal/cli/scheme/colours"
	"echofactory/internal/config"
	"echofactory/internal/hooks"
	"echofactory/internal/voicectl"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {

	config.SetDefaults()

	rootCmd := &cobra.Command{
		Use:   "echofactory",
		Short: "🏭 Voice hooks for the Context Engineering Factory",
		Long: `
┌─────────────────────────────────────────┐
│  🏭 EchoFactory Voice Hooks 🔊          │
│  Spoken progress for factory runs       │
└─────────────────────────────────────────┘

EchoFactory turns agent events into spoken announcements: it watches
todo updates for factory phase changes, announces when input is needed,
and lets you toggle the whole thing on or off.
		`,
	}

	// Notification hook: logs the event, optionally speaks it
	notificationCmd := &cobra.Command{
		Use:   "notification",
		Short: "🔔 Log an agent event and optionally announce it",
		Long:  "Reads one JSON event from stdin, appends it to the event log, and speaks an input-needed announcement when --notify is set. Always exits 0.",
		Run: func(cmd *cobra.Command, args []string) {
			announce, _ := cmd.Flags().GetBool("notify")
			hooks.NewNotificationHook(announce).Run(os.Stdin)
		},
	}
	notificationCmd.Flags().Bool("notify", false, "Enable TTS notifications")

	// Factory-progress hook: announces phase transitions from TodoWrite events
	factoryCmd := &cobra.Command{
		Use:   "factory",
		Short: "📢 Announce factory phase progress from todo updates",
		Long:  "Reads one JSON tool event from stdin and speaks a phase announcement when a factory todo starts or the final phase completes. Requires --factory. Always exits 0.",
		Run: func(cmd *cobra.Command, args []string) {
			announce, _ := cmd.Flags().GetBool("factory")
			hooks.NewFactoryHook(announce).Run(os.Stdin)
		},
	}
	factoryCmd.Flags().Bool("factory", false, "Enable factory-specific TTS notifications")

	// Voice control: the only command that fails loudly
	voiceCmd := &cobra.Command{
		Use:   "voice",
		Short: "🎚️ Enable, disable, toggle, or show voice announcements",
		Run: func(cmd *cobra.Command, args []string) {
			ctl := voicectl.New(config.FactoryConfigPath(), os.Stdout)

			var err error
			switch {
			case mustBool(cmd, "enable"):
				err = ctl.SetState(true)
			case mustBool(cmd, "disable"):
				err = ctl.SetState(false)
			case mustBool(cmd, "status"):
				err = ctl.Status()
			default:
				err = ctl.Toggle()
			}

			if err != nil {
				os.Exit(1)
			}
		},
	}
	voiceCmd.Flags().Bool("enable", false, "Enable voice announcements")
	voiceCmd.Flags().Bool("disable", false, "Disable voice announcements")
	voiceCmd.Flags().Bool("toggle", false, "Toggle voice announcements")
	voiceCmd.Flags().Bool("status", false, "Show current voice status")
	voiceCmd.MarkFlagsMutuallyExclusive("enable", "disable", "toggle", "status")

	rootCmd.AddCommand(notificationCmd, factoryCmd, voiceCmd)

	if err := rootCmd.Execute(); err != nil {
		colours.Error.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

// Configuration management with Viper
func init() {
	// .env is optional; API keys and ENGINEER_NAME may come from it
	godotenv.Load()

	viper.SetConfigName("echofactory")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.claude")
	viper.AddConfigPath(".")

	viper.ReadInConfig()
}
