package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EasterCompany/dex-camb-tools/camb"
)

const textToSoundSchema = `{
  "type": "object",
  "properties": {
    "prompt": {
      "type": "string",
      "description": "Description of the sound or music to generate."
    },
    "duration": {
      "type": "number",
      "description": "Duration of the audio in seconds."
    },
    "audio_type": {
      "type": "string",
      "enum": ["music", "sound"],
      "description": "Type of audio: 'music' or 'sound'."
    },
    "output_format": {
      "type": "string",
      "enum": ["file_path", "base64"],
      "default": "file_path",
      "description": "Output format: 'file_path' or 'base64'."
    }
  },
  "required": ["prompt"]
}`

type textToSoundArgs struct {
	Prompt       string  `json:"prompt"`
	Duration     float64 `json:"duration"`
	AudioType    string  `json:"audio_type"`
	OutputFormat string  `json:"output_format"`
}

// TextToSoundTool generates music, sound effects or soundscapes from a text
// prompt. Generation runs as a server-side task whose result endpoint
// streams the finished audio.
type TextToSoundTool struct {
	deps Deps
}

func NewTextToSoundTool(deps Deps) *TextToSoundTool {
	return &TextToSoundTool{deps: deps}
}

func (t *TextToSoundTool) Name() string { return "camb_text_to_sound" }

func (t *TextToSoundTool) Description() string {
	return "Generate sounds, music, or soundscapes from text descriptions using CAMB AI. " +
		"Describe the audio you want and optionally specify duration and type " +
		"(music, sound_effect, ambient). Returns audio file."
}

func (t *TextToSoundTool) Schema() json.RawMessage { return json.RawMessage(textToSoundSchema) }

func (t *TextToSoundTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	a := textToSoundArgs{OutputFormat: OutputFilePath}
	if err := decodeArgs(t.Name(), args, &a); err != nil {
		return "", err
	}
	if a.Prompt == "" {
		return "", &ArgumentError{Tool: t.Name(), Field: "prompt", Msg: "must not be empty"}
	}
	if a.OutputFormat != OutputFilePath && a.OutputFormat != OutputBase64 {
		return "", &ArgumentError{Tool: t.Name(), Field: "output_format", Msg: "must be one of file_path, base64"}
	}

	created, err := t.deps.Client.CreateTextToSound(ctx, camb.TextToSoundRequest{
		Prompt:    a.Prompt,
		Duration:  a.Duration,
		AudioType: a.AudioType,
	})
	if err != nil {
		return "", fmt.Errorf("could not create text-to-sound task: %w", err)
	}

	status, err := t.deps.Poller.Poll(ctx, t.deps.Client.TextToSoundStatus, created.TaskID)
	if err != nil {
		return "", err
	}

	data, _, err := t.deps.Client.TextToSoundResult(ctx, status.RunID)
	if err != nil {
		return "", fmt.Errorf("could not fetch text-to-sound result: %w", err)
	}
	return encodeRawAudio(t.Name(), data, a.OutputFormat, t.deps.Store)
}
