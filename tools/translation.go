package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/EasterCompany/dex-camb-tools/camb"
)

const translationSchema = `{
  "type": "object",
  "properties": {
    "text": {
      "type": "string",
      "description": "Text to translate."
    },
    "source_language": {
      "type": "integer",
      "description": "Source language code (integer). Common codes: 1=English, 2=Spanish, 3=French, 4=German, 5=Italian, 6=Portuguese, 7=Dutch, 8=Russian, 9=Japanese, 10=Korean, 11=Chinese."
    },
    "target_language": {
      "type": "integer",
      "description": "Target language code (integer). Use same language codes as source_language."
    },
    "formality": {
      "type": "integer",
      "description": "Formality level: 1=formal, 2=informal. Optional."
    }
  },
  "required": ["text", "source_language", "target_language"]
}`

type translationArgs struct {
	Text           string `json:"text"`
	SourceLanguage int    `json:"source_language"`
	TargetLanguage int    `json:"target_language"`
	Formality      int    `json:"formality"`
}

// TranslationTool translates text between languages. Unlike the audio tools
// it returns plain text directly from the streaming endpoint.
type TranslationTool struct {
	deps Deps
}

func NewTranslationTool(deps Deps) *TranslationTool {
	return &TranslationTool{deps: deps}
}

func (t *TranslationTool) Name() string { return "camb_translation" }

func (t *TranslationTool) Description() string {
	return "Translate text between 140+ languages using CAMB AI. " +
		"Provide source and target language codes (integers) and the text to translate. " +
		"Common codes: 1=English, 2=Spanish, 3=French, 4=German, 5=Italian."
}

func (t *TranslationTool) Schema() json.RawMessage { return json.RawMessage(translationSchema) }

func (t *TranslationTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a translationArgs
	if err := decodeArgs(t.Name(), args, &a); err != nil {
		return "", err
	}
	if a.Text == "" {
		return "", &ArgumentError{Tool: t.Name(), Field: "text", Msg: "must not be empty"}
	}

	text, err := t.deps.Client.Translate(ctx, camb.TranslateRequest{
		Text:           a.Text,
		SourceLanguage: a.SourceLanguage,
		TargetLanguage: a.TargetLanguage,
		Formality:      a.Formality,
	})
	if err != nil {
		// The endpoint often answers 200 with the bare translated string
		// instead of the documented JSON envelope. That surfaces as a
		// decode failure carrying the body, which IS the translation.
		var apiErr *camb.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 200 && apiErr.Body != "" {
			return apiErr.Body, nil
		}
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	return text, nil
}
