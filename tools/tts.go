package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/EasterCompany/dex-camb-tools/camb"
)

const ttsSchema = `{
  "type": "object",
  "properties": {
    "text": {
      "type": "string",
      "minLength": 3,
      "maxLength": 3000,
      "description": "Text to convert to speech (3-3000 characters)."
    },
    "language": {
      "type": "string",
      "default": "en-us",
      "description": "BCP-47 language code (e.g., 'en-us', 'es-es', 'fr-fr')."
    },
    "voice_id": {
      "type": "integer",
      "default": 147320,
      "description": "Voice ID to use. Get available voices with camb_voice_list."
    },
    "speech_model": {
      "type": "string",
      "default": "mars-flash",
      "description": "Speech model: 'mars-flash' (fast), 'mars-pro' (quality), 'mars-instruct' (with instructions)."
    },
    "output_format": {
      "type": "string",
      "enum": ["file_path", "base64", "bytes"],
      "default": "file_path",
      "description": "Output format: 'file_path' (save to file), 'base64' (encoded string), 'bytes' (raw bytes)."
    },
    "speed": {
      "type": "number",
      "minimum": 0.5,
      "maximum": 2.0,
      "default": 1.0,
      "description": "Speech speed multiplier (0.5-2.0)."
    },
    "user_instructions": {
      "type": "string",
      "description": "Instructions for mars-instruct model (e.g., 'Speak with excitement')."
    }
  },
  "required": ["text"]
}`

type ttsArgs struct {
	Text             string  `json:"text"`
	Language         string  `json:"language"`
	VoiceID          int64   `json:"voice_id"`
	SpeechModel      string  `json:"speech_model"`
	OutputFormat     string  `json:"output_format"`
	Speed            float64 `json:"speed"`
	UserInstructions string  `json:"user_instructions"`
}

// TTSTool converts text to speech through the streaming endpoint. It is the
// only audio tool that may return raw bytes, because it is the only one
// whose audio never passes through a task result.
type TTSTool struct {
	deps Deps
}

// NewTTSTool builds the tool from shared dependencies.
func NewTTSTool(deps Deps) *TTSTool {
	return &TTSTool{deps: deps}
}

func (t *TTSTool) Name() string { return "camb_tts" }

func (t *TTSTool) Description() string {
	return "Convert text to speech using CAMB AI. " +
		"Supports 140+ languages and multiple voice models. " +
		"Returns audio as file path, base64, or raw bytes."
}

func (t *TTSTool) Schema() json.RawMessage { return json.RawMessage(ttsSchema) }

func (t *TTSTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	a := ttsArgs{
		Language:     "en-us",
		VoiceID:      147320,
		SpeechModel:  camb.ModelMarsFlash,
		OutputFormat: OutputFilePath,
		Speed:        1.0,
	}
	if err := decodeArgs(t.Name(), args, &a); err != nil {
		return "", err
	}
	if n := utf8.RuneCountInString(a.Text); n < 3 || n > 3000 {
		return "", &ArgumentError{Tool: t.Name(), Field: "text", Msg: "must be 3-3000 characters"}
	}
	if a.Speed < 0.5 || a.Speed > 2.0 {
		return "", &ArgumentError{Tool: t.Name(), Field: "speed", Msg: "must be between 0.5 and 2.0"}
	}

	req := camb.TTSRequest{
		Text:                a.Text,
		Language:            a.Language,
		VoiceID:             a.VoiceID,
		SpeechModel:         a.SpeechModel,
		OutputConfiguration: &camb.TTSOutputConfiguration{Format: "wav"},
		VoiceSettings:       &camb.TTSVoiceSettings{Speed: a.Speed},
	}
	// Instructions only mean something to mars-instruct; the other models
	// silently ignore the field, so it is dropped for them.
	if a.UserInstructions != "" && a.SpeechModel == camb.ModelMarsInstruct {
		req.UserInstructions = a.UserInstructions
	}

	data, _, err := t.deps.Client.TTS(ctx, req)
	if err != nil {
		return "", fmt.Errorf("tts request failed: %w", err)
	}
	return encodeRawAudio(t.Name(), data, a.OutputFormat, t.deps.Store)
}
