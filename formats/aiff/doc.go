// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit AIFF files into an audio.Source.
//
// go-audio/aiff needs to seek, so a plain io.Reader is buffered in memory
// first. Other bit depths fail with ErrOnlyPCM16bitSupported.
package aiff
