// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/poemaudio/formats/wav"
	"github.com/ik5/poemaudio/internal/logger"
	"github.com/ik5/poemaudio/wavurl"
)

// writeAudio prints the data URL to stdout, or writes a file when path is set:
// a .wav path gets the raw WAV bytes, anything else the data URL text.
func writeAudio(stdout io.Writer, path string, pcm []byte, sampleRate int) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, wavurl.FromPCM(pcm, sampleRate))
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".wav") {
		err = wav.WritePCM(f, sampleRate, pcm)
	} else {
		_, err = io.WriteString(f, wavurl.FromPCM(pcm, sampleRate))
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	logger.Log.Info("wrote audio", "path", path, "pcm_bytes", len(pcm), "sample_rate", sampleRate)
	return nil
}

// openInput returns stdin for "" or "-".
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}
