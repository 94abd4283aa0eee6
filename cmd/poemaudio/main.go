// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/poemaudio/internal/config"
	"github.com/ik5/poemaudio/internal/logger"
)

var (
	cfg      *config.Config
	logLevel string
	logJSON  bool
)

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poemaudio",
		Short: "Turn the letter's poem, or any audio, into a playable WAV data URL",
		Long: `poemaudio wraps headerless 16-bit PCM in a RIFF/WAVE container and emits it as
data:audio/wav;base64,... so a browser <audio> element can play it directly.

Configuration is read from the environment and an optional .env file:
GEMINI_API_KEY, TTS_MODEL, TTS_VOICE, TTS_SAMPLE_RATE, LISTEN_ADDR, LOG_LEVEL, LOG_FORMAT.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("log-level") {
				logLevel = cfg.LogLevel
			}
			if !cmd.Flags().Changed("log-json") {
				logJSON = cfg.LogJSON
			}

			level, err := logger.ParseLevel(logLevel)
			if err != nil {
				return err
			}

			logger.Setup(os.Stderr, level, logJSON)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log as JSON instead of text")

	cmd.AddCommand(
		speakCommand(),
		wrapCommand(),
		convertCommand(),
		inspectCommand(),
		serveCommand(),
	)

	return cmd
}

func main() {
	cfg = config.Load()

	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
