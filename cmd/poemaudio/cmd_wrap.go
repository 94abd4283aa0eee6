// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/poemaudio/internal/logger"
	"github.com/ik5/poemaudio/wavurl"
)

var (
	wrapIn     string
	wrapOut    string
	wrapRate   int
	wrapStrict bool
)

func wrapCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrap",
		Short: "Wrap base64 16-bit mono PCM in a WAV data URL",
		Long: `Read base64 encoded, headerless, mono 16-bit little-endian PCM and print it as
data:audio/wav;base64,... The payload bytes are kept exactly as given.`,
		Example: `  echo AAAAAA== | poemaudio wrap
  poemaudio wrap -i speech.b64 -r 16000 -o speech.wav`,
		RunE: runWrap,
	}

	cmd.Flags().StringVarP(&wrapIn, "in", "i", "-", "Input file with base64 text (- for stdin)")
	cmd.Flags().StringVarP(&wrapOut, "out", "o", "", "Output file (.wav for raw audio, otherwise the data URL)")
	cmd.Flags().IntVarP(&wrapRate, "rate", "r", 24000, "Sample rate of the PCM in Hz")
	cmd.Flags().BoolVar(&wrapStrict, "strict", false, "Reject odd-length PCM")

	return cmd
}

func runWrap(cmd *cobra.Command, args []string) error {
	in, err := openInput(wrapIn, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	text, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	pcm, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("%w: %w", wavurl.ErrInvalidBase64, err)
	}

	err = wavurl.Validate(pcm, wrapRate)
	if errors.Is(err, wavurl.ErrOddPCMLength) && !wrapStrict {
		logger.Log.Warn("PCM has a trailing partial sample", "bytes", len(pcm))
		err = nil
	}
	if err != nil {
		return err
	}

	return writeAudio(cmd.OutOrStdout(), wrapOut, pcm, wrapRate)
}
