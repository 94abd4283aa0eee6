// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/poemaudio/formats/wav"
	"github.com/ik5/poemaudio/wavurl"
)

func inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file|-]",
		Short: "Show the header of a WAV file or WAV data URL",
		Example: `  poemaudio speak | poemaudio inspect
  poemaudio inspect poem.wav`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	in, err := openInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	file := raw
	if trimmed := bytes.TrimSpace(raw); bytes.HasPrefix(trimmed, []byte("data:")) {
		if file, err = wavurl.Decode(string(trimmed)); err != nil {
			return err
		}
	}

	h, err := wav.ParseHeader(file)
	if err != nil {
		return err
	}

	var frames uint32
	if h.BlockAlign() > 0 {
		frames = h.DataSize / uint32(h.BlockAlign())
	}

	var duration time.Duration
	if h.ByteRate() > 0 {
		duration = time.Duration(float64(h.DataSize) / float64(h.ByteRate()) * float64(time.Second))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "format:       PCM %d-bit\n", h.BitsPerSample)
	fmt.Fprintf(out, "channels:     %d\n", h.Channels)
	fmt.Fprintf(out, "sample rate:  %d Hz\n", h.SampleRate)
	fmt.Fprintf(out, "byte rate:    %d\n", h.ByteRate())
	fmt.Fprintf(out, "block align:  %d\n", h.BlockAlign())
	fmt.Fprintf(out, "riff size:    %d\n", h.RIFFSize())
	fmt.Fprintf(out, "data size:    %d\n", h.DataSize)
	fmt.Fprintf(out, "frames:       %d\n", frames)
	fmt.Fprintf(out, "duration:     %s\n", duration.Round(time.Millisecond))

	if got := len(file) - wav.HeaderSize; got != int(h.DataSize) {
		fmt.Fprintf(out, "warning:      header declares %d data bytes, file holds %d\n", h.DataSize, got)
	}

	return nil
}
