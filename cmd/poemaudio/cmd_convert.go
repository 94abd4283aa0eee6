// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/poemaudio"
	"github.com/ik5/poemaudio/audio"
	"github.com/ik5/poemaudio/formats/aiff"
	"github.com/ik5/poemaudio/formats/mp3"
	"github.com/ik5/poemaudio/formats/vorbis"
	"github.com/ik5/poemaudio/formats/wav"
	"github.com/ik5/poemaudio/internal/logger"
)

var (
	convertOut  string
	convertRate int
)

func decoders() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

func convertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input.{wav|mp3|ogg|aiff}>",
		Short: "Render an audio file as mono 16-bit WAV data URL",
		Long: `Decode an audio file, resample it to --rate, mix it down to mono and print the
result as a WAV data URL (or write a .wav file with -o).`,
		Example: `  poemaudio convert greeting.mp3
  poemaudio convert -r 8000 -o phone.wav greeting.ogg`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}

	cmd.Flags().StringVarP(&convertOut, "out", "o", "", "Output file (.wav for raw audio, otherwise the data URL)")
	cmd.Flags().IntVarP(&convertRate, "rate", "r", 24000, "Target sample rate in Hz")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	inPath := args[0]
	reg := decoders()

	ext := filepath.Ext(inPath)
	dec, ok := reg.Get(ext)
	if !ok {
		return fmt.Errorf("unsupported format %q (supported: %s)", ext, strings.Join(reg.Formats(), ", "))
	}

	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	defer src.Close()

	logger.Log.Debug("decoded input", "path", inPath, "sample_rate", src.SampleRate(), "channels", src.Channels())

	pcm, err := poemaudio.RenderPCM16(src, convertRate, 4096)
	if err != nil {
		return err
	}

	return writeAudio(cmd.OutOrStdout(), convertOut, pcm, convertRate)
}
