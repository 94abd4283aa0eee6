// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/poemaudio"
	"github.com/ik5/poemaudio/tts/gemini"
	"github.com/ik5/poemaudio/wavurl"
)

var (
	speakOut   string
	speakText  string
	speakVoice string
)

func speakCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speak",
		Short: "Read the poem (or custom text) aloud with Gemini",
		Long: `Ask Gemini text-to-speech to read the poem and print the result as a WAV data URL.
Requires GEMINI_API_KEY.`,
		Example: `  poemaudio speak
  poemaudio speak -o poem.wav
  poemaudio speak --voice Puck --text "hello"`,
		RunE: runSpeak,
	}

	cmd.Flags().StringVarP(&speakOut, "out", "o", "", "Output file (.wav for raw audio, otherwise the data URL)")
	cmd.Flags().StringVarP(&speakText, "text", "t", "", "Text to read instead of the poem")
	cmd.Flags().StringVar(&speakVoice, "voice", "", "Prebuilt voice name (default from TTS_VOICE)")

	return cmd
}

func runSpeak(cmd *cobra.Command, args []string) error {
	voice := cfg.TTSVoice
	if speakVoice != "" {
		voice = speakVoice
	}

	synth, err := gemini.New(cmd.Context(), cfg.GeminiAPIKey, gemini.Options{
		Model:      cfg.TTSModel,
		Voice:      voice,
		SampleRate: cfg.SampleRate,
	})
	if err != nil {
		return err
	}

	text := poemaudio.Prompt(poemaudio.PoemText)
	if speakText != "" {
		text = speakText
	}

	speech, err := synth.Synthesize(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("no audio available: %w", err)
	}

	if err := wavurl.Validate(speech.PCM, speech.SampleRate); err != nil {
		return errors.Join(errors.New("no audio available"), err)
	}

	return writeAudio(cmd.OutOrStdout(), speakOut, speech.PCM, speech.SampleRate)
}
