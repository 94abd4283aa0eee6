package vorbis

import "errors"

var ErrNotVorbisStream = errors.New("not an Ogg Vorbis stream")
