package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EasterCompany/dex-camb-tools/camb"
	"github.com/EasterCompany/dex-camb-tools/resolve"
)

const translatedTTSSchema = `{
  "type": "object",
  "properties": {
    "text": {
      "type": "string",
      "description": "Text to translate and convert to speech."
    },
    "source_language": {
      "type": "integer",
      "description": "Source language code (integer). Common codes: 1=English, 2=Spanish, 3=French."
    },
    "target_language": {
      "type": "integer",
      "description": "Target language code (integer) for the output speech."
    },
    "voice_id": {
      "type": "integer",
      "default": 147320,
      "description": "Voice ID for TTS. Get available voices with camb_voice_list."
    },
    "output_format": {
      "type": "string",
      "enum": ["file_path", "base64"],
      "default": "file_path",
      "description": "Output format: 'file_path' or 'base64'."
    },
    "formality": {
      "type": "integer",
      "description": "Translation formality: 1=formal, 2=informal."
    }
  },
  "required": ["text", "source_language", "target_language"]
}`

type translatedTTSArgs struct {
	Text           string `json:"text"`
	SourceLanguage int    `json:"source_language"`
	TargetLanguage int    `json:"target_language"`
	VoiceID        int64  `json:"voice_id"`
	OutputFormat   string `json:"output_format"`
	Formality      int    `json:"formality"`
}

// TranslatedTTSTool translates text and speaks it in one call. The work runs
// as a server-side task, so the tool polls for completion and then resolves
// the audio from the finished status.
type TranslatedTTSTool struct {
	deps Deps
}

func NewTranslatedTTSTool(deps Deps) *TranslatedTTSTool {
	return &TranslatedTTSTool{deps: deps}
}

func (t *TranslatedTTSTool) Name() string { return "camb_translated_tts" }

func (t *TranslatedTTSTool) Description() string {
	return "Translate text and convert to speech in one step. " +
		"Provide source text, source language, target language, and voice ID. " +
		"Returns audio file of the translated text spoken in the target language."
}

func (t *TranslatedTTSTool) Schema() json.RawMessage { return json.RawMessage(translatedTTSSchema) }

func (t *TranslatedTTSTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	a := translatedTTSArgs{
		VoiceID:      147320,
		OutputFormat: OutputFilePath,
	}
	if err := decodeArgs(t.Name(), args, &a); err != nil {
		return "", err
	}
	if a.Text == "" {
		return "", &ArgumentError{Tool: t.Name(), Field: "text", Msg: "must not be empty"}
	}

	created, err := t.deps.Client.CreateTranslatedTTS(ctx, camb.TranslatedTTSRequest{
		Text:           a.Text,
		VoiceID:        a.VoiceID,
		SourceLanguage: a.SourceLanguage,
		TargetLanguage: a.TargetLanguage,
		Formality:      a.Formality,
	})
	if err != nil {
		return "", fmt.Errorf("could not create translated tts task: %w", err)
	}

	status, err := t.deps.Poller.Poll(ctx, t.deps.Client.TranslatedTTSStatus, created.TaskID)
	if err != nil {
		return "", err
	}

	artifact, err := t.resolver().Audio(ctx, status)
	if err != nil {
		return "", err
	}
	return encodeArtifact(t.Name(), artifact, a.OutputFormat, t.deps.Store)
}

func (t *TranslatedTTSTool) resolver() resolve.Resolver {
	return resolve.Resolver{
		FetchResult: t.deps.Client.TTSResult,
		FetchURL:    t.deps.Client.Get,
	}
}
