package tools

import (
	"encoding/base64"

	"github.com/EasterCompany/dex-camb-tools/audio"
	"github.com/EasterCompany/dex-camb-tools/store"
)

// Output formats a tool can return audio in.
const (
	OutputBytes    = "bytes"
	OutputBase64   = "base64"
	OutputFilePath = "file_path"
)

// encodeArtifact renders a resolved artifact in the requested output format.
// The artifact is normalized first, so raw PCM always leaves here wearing a
// WAV header, and file extensions follow the normalized format. Every
// file_path call gets a distinct new file.
func encodeArtifact(toolName string, a audio.Artifact, format string, st store.Store) (string, error) {
	a = a.Normalize()
	switch format {
	case OutputBase64:
		return base64.StdEncoding.EncodeToString(a.Data), nil
	case OutputFilePath, "":
		return st.Save(a.Data, "camb-*"+a.Format.Ext())
	default:
		return "", &ArgumentError{
			Tool:  toolName,
			Field: "output_format",
			Msg:   "must be one of file_path, base64",
		}
	}
}

// encodeRawAudio renders an inline audio stream for the one capability that
// answers synchronously. The stream already carries the requested container,
// so there is no normalization and files are always .wav; "bytes" hands the
// stream back byte-for-byte inside the result string.
func encodeRawAudio(toolName string, data []byte, format string, st store.Store) (string, error) {
	switch format {
	case OutputBytes:
		return string(data), nil
	case OutputBase64:
		return base64.StdEncoding.EncodeToString(data), nil
	case OutputFilePath, "":
		return st.Save(data, "camb-*.wav")
	default:
		return "", &ArgumentError{
			Tool:  toolName,
			Field: "output_format",
			Msg:   "must be one of file_path, base64, bytes",
		}
	}
}
