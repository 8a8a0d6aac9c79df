// Package audio classifies provider audio payloads and wraps raw PCM in a
// playable WAV container. The provider's endpoints return whatever container
// the underlying model produced and their content-type headers are not
// reliable, so classification reads the bytes first.
package audio

import (
	"bytes"
	"strings"
)

// Format identifies the container (or absence of one) around audio bytes.
type Format string

const (
	FormatWAV  Format = "wav"
	FormatMP3  Format = "mp3"
	FormatFLAC Format = "flac"
	FormatOGG  Format = "ogg"
	// FormatPCM marks headerless samples: 16-bit little-endian, 24kHz, mono.
	FormatPCM Format = "pcm"
)

// Detect classifies audio data by magic number first and content-type header
// second. Anything unrecognized is treated as raw PCM, which the provider
// emits for its streaming endpoints.
func Detect(data []byte, contentType string) Format {
	switch {
	case bytes.HasPrefix(data, []byte("RIFF")):
		return FormatWAV
	case bytes.HasPrefix(data, []byte{0xff, 0xfb}),
		bytes.HasPrefix(data, []byte{0xff, 0xfa}),
		bytes.HasPrefix(data, []byte("ID3")):
		return FormatMP3
	case bytes.HasPrefix(data, []byte("fLaC")):
		return FormatFLAC
	case bytes.HasPrefix(data, []byte("OggS")):
		return FormatOGG
	}

	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "wav"), strings.Contains(ct, "wave"):
		return FormatWAV
	case strings.Contains(ct, "mpeg"), strings.Contains(ct, "mp3"):
		return FormatMP3
	case strings.Contains(ct, "flac"):
		return FormatFLAC
	case strings.Contains(ct, "ogg"):
		return FormatOGG
	}

	return FormatPCM
}

// Ext returns the file extension for the format. PCM maps to ".wav" because
// PCM artifacts are always wrapped in a WAV container before they reach disk.
func (f Format) Ext() string {
	switch f {
	case FormatMP3:
		return ".mp3"
	case FormatFLAC:
		return ".flac"
	case FormatOGG:
		return ".ogg"
	default:
		return ".wav"
	}
}
