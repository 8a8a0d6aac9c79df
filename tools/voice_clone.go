package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EasterCompany/dex-camb-tools/camb"
)

const voiceCloneSchema = `{
  "type": "object",
  "properties": {
    "voice_name": {
      "type": "string",
      "description": "Name for the new cloned voice."
    },
    "audio_file_path": {
      "type": "string",
      "description": "Path to audio file (2+ seconds) to clone voice from."
    },
    "gender": {
      "type": "integer",
      "description": "Gender: 1=Male, 2=Female, 0=Not Specified, 9=Not Applicable."
    },
    "description": {
      "type": "string",
      "description": "Optional description of the voice."
    },
    "age": {
      "type": "integer",
      "description": "Optional age of the voice."
    },
    "language": {
      "type": "integer",
      "description": "Optional language code for the voice."
    }
  },
  "required": ["voice_name", "audio_file_path", "gender"]
}`

type voiceCloneArgs struct {
	VoiceName     string `json:"voice_name"`
	AudioFilePath string `json:"audio_file_path"`
	Gender        int    `json:"gender"`
	Description   string `json:"description"`
	Age           int    `json:"age"`
	Language      int    `json:"language"`
}

type voiceCloneResult struct {
	VoiceID   *int64 `json:"voice_id"`
	VoiceName string `json:"voice_name"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}

// VoiceCloneTool registers a custom voice from a reference recording. The
// returned voice_id plugs straight into the TTS tools.
type VoiceCloneTool struct {
	deps Deps
}

func NewVoiceCloneTool(deps Deps) *VoiceCloneTool {
	return &VoiceCloneTool{deps: deps}
}

func (t *VoiceCloneTool) Name() string { return "camb_voice_clone" }

func (t *VoiceCloneTool) Description() string {
	return "Clone a voice from an audio sample using CAMB AI. " +
		"Requires 2+ seconds of audio. " +
		"Returns the new voice ID that can be used with TTS tools. " +
		"Gender: 1=Male, 2=Female, 0=Not Specified."
}

func (t *VoiceCloneTool) Schema() json.RawMessage { return json.RawMessage(voiceCloneSchema) }

func (t *VoiceCloneTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a voiceCloneArgs
	if err := decodeArgs(t.Name(), args, &a); err != nil {
		return "", err
	}
	if a.VoiceName == "" {
		return "", &ArgumentError{Tool: t.Name(), Field: "voice_name", Msg: "must not be empty"}
	}
	if a.AudioFilePath == "" {
		return "", &ArgumentError{Tool: t.Name(), Field: "audio_file_path", Msg: "must not be empty"}
	}

	created, err := t.deps.Client.CreateCustomVoice(ctx, camb.VoiceCloneRequest{
		VoiceName:   a.VoiceName,
		FilePath:    a.AudioFilePath,
		Gender:      a.Gender,
		Description: a.Description,
		Age:         a.Age,
		Language:    a.Language,
	})
	if err != nil {
		return "", fmt.Errorf("could not clone voice: %w", err)
	}

	result := voiceCloneResult{
		VoiceName: a.VoiceName,
		Status:    "created",
		Message:   created.Message,
	}
	// Newer deployments answer with voice_id, older ones with bare id.
	switch {
	case created.VoiceID != 0:
		result.VoiceID = &created.VoiceID
	case created.ID != 0:
		result.VoiceID = &created.ID
	}
	return jsonResult(result)
}
