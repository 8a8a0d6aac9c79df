package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EasterCompany/dex-camb-tools/camb"
	"github.com/EasterCompany/dex-camb-tools/resolve"
)

const transcriptionSchema = `{
  "type": "object",
  "properties": {
    "language": {
      "type": "integer",
      "description": "Language code (integer) for the audio. Common codes: 1=English, 2=Spanish, 3=French, 4=German, 5=Italian."
    },
    "audio_url": {
      "type": "string",
      "description": "URL of the audio file to transcribe. Provide either audio_url or audio_file_path."
    },
    "audio_file_path": {
      "type": "string",
      "description": "Local file path to the audio file. Provide either audio_url or audio_file_path."
    }
  },
  "required": ["language"]
}`

type transcriptionArgs struct {
	Language      int    `json:"language"`
	AudioURL      string `json:"audio_url"`
	AudioFilePath string `json:"audio_file_path"`
}

// TranscriptionTool converts speech to text with speaker identification.
// Results come back as a JSON document with the full text, timed segments
// and the distinct speakers.
type TranscriptionTool struct {
	deps Deps
}

func NewTranscriptionTool(deps Deps) *TranscriptionTool {
	return &TranscriptionTool{deps: deps}
}

func (t *TranscriptionTool) Name() string { return "camb_transcription" }

func (t *TranscriptionTool) Description() string {
	return "Transcribe audio to text using CAMB AI. " +
		"Supports audio URLs or local files. " +
		"Returns transcription with segments and speaker identification. " +
		"Provide language code (1=English, 2=Spanish, etc.) and audio source."
}

func (t *TranscriptionTool) Schema() json.RawMessage { return json.RawMessage(transcriptionSchema) }

func (t *TranscriptionTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a transcriptionArgs
	if err := decodeArgs(t.Name(), args, &a); err != nil {
		return "", err
	}
	if err := requireOneAudioSource(t.Name(), a.AudioURL, a.AudioFilePath); err != nil {
		return "", err
	}

	created, err := t.deps.Client.CreateTranscription(ctx, camb.TranscriptionRequest{
		Language: a.Language,
		AudioURL: a.AudioURL,
		FilePath: a.AudioFilePath,
	})
	if err != nil {
		return "", fmt.Errorf("could not create transcription task: %w", err)
	}

	status, err := t.deps.Poller.Poll(ctx, t.deps.Client.TranscriptionStatus, created.TaskID)
	if err != nil {
		return "", err
	}

	transcription, err := t.deps.Client.TranscriptionResult(ctx, status.RunID)
	if err != nil {
		return "", fmt.Errorf("could not fetch transcription result: %w", err)
	}
	return jsonResult(resolve.NormalizeTranscript(transcription))
}
