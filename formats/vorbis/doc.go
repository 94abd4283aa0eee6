// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis input into an audio.Source.
//
// Samples come out interleaved at the stream's own rate and channel count.
// Read buffers are trimmed to a whole number of frames.
package vorbis
