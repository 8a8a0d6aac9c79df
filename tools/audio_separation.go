package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EasterCompany/dex-camb-tools/camb"
	"github.com/EasterCompany/dex-camb-tools/resolve"
)

const audioSeparationSchema = `{
  "type": "object",
  "properties": {
    "audio_url": {
      "type": "string",
      "description": "URL of the audio file to separate. Provide either audio_url or audio_file_path."
    },
    "audio_file_path": {
      "type": "string",
      "description": "Local file path to the audio. Provide either audio_url or audio_file_path."
    }
  }
}`

type audioSeparationArgs struct {
	AudioURL      string `json:"audio_url"`
	AudioFilePath string `json:"audio_file_path"`
}

// AudioSeparationTool splits a recording into vocal and background stems.
type AudioSeparationTool struct {
	deps Deps
}

func NewAudioSeparationTool(deps Deps) *AudioSeparationTool {
	return &AudioSeparationTool{deps: deps}
}

func (t *AudioSeparationTool) Name() string { return "camb_audio_separation" }

func (t *AudioSeparationTool) Description() string {
	return "Separate vocals/speech from background audio using CAMB AI. " +
		"Provide an audio URL or file path. " +
		"Returns separate files for vocals and background audio."
}

func (t *AudioSeparationTool) Schema() json.RawMessage { return json.RawMessage(audioSeparationSchema) }

func (t *AudioSeparationTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a audioSeparationArgs
	if err := decodeArgs(t.Name(), args, &a); err != nil {
		return "", err
	}
	if err := requireOneAudioSource(t.Name(), a.AudioURL, a.AudioFilePath); err != nil {
		return "", err
	}

	created, err := t.deps.Client.CreateAudioSeparation(ctx, camb.SeparationRequest{
		AudioURL: a.AudioURL,
		FilePath: a.AudioFilePath,
	})
	if err != nil {
		return "", fmt.Errorf("could not create audio separation task: %w", err)
	}

	status, err := t.deps.Poller.Poll(ctx, t.deps.Client.AudioSeparationStatus, created.TaskID)
	if err != nil {
		return "", err
	}

	result, err := t.deps.Client.AudioSeparationResult(ctx, status.RunID)
	if err != nil {
		return "", fmt.Errorf("could not fetch audio separation result: %w", err)
	}

	stems, err := resolve.NormalizeStems(result, t.deps.Store.Save)
	if err != nil {
		return "", err
	}
	return jsonResult(stems)
}
