package camb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EasterCompany/dex-camb-tools/task"
)

// SeparationRequest submits audio to be split into vocal and background
// stems. Exactly one of AudioURL and FilePath must be set.
type SeparationRequest struct {
	AudioURL string
	FilePath string
}

// SeparationResult is the provider's separation payload. Which fields are
// populated has drifted across provider versions: newer deployments send
// voice_url/instrumental_url, older ones vocals_url/background_url, and
// the bare vocals/background fields may hold a URL string or inline audio.
// The resolve package picks through the variants.
type SeparationResult struct {
	VoiceURL        string          `json:"voice_url"`
	VocalsURL       string          `json:"vocals_url"`
	Vocals          json.RawMessage `json:"vocals"`
	InstrumentalURL string          `json:"instrumental_url"`
	BackgroundURL   string          `json:"background_url"`
	Background      json.RawMessage `json:"background"`
}

// CreateAudioSeparation submits a separation task. Local files are uploaded
// as multipart form data; URLs are passed by reference.
func (c *Client) CreateAudioSeparation(ctx context.Context, req SeparationRequest) (TaskCreated, error) {
	fields := map[string]string{}
	fileField := ""
	if req.AudioURL != "" {
		fields["audio_url"] = req.AudioURL
	} else {
		fileField = "media_file"
	}

	var created TaskCreated
	if err := c.postMultipart(ctx, "/audio-separation", fields, fileField, req.FilePath, &created); err != nil {
		return TaskCreated{}, err
	}
	return created, nil
}

// AudioSeparationStatus fetches one status snapshot for a separation task.
func (c *Client) AudioSeparationStatus(ctx context.Context, taskID string) (task.Status, error) {
	return c.taskStatus(ctx, "/audio-separation", taskID)
}

// AudioSeparationResult fetches the stem descriptors for a completed run.
func (c *Client) AudioSeparationResult(ctx context.Context, runID int64) (SeparationResult, error) {
	var res SeparationResult
	if err := c.getJSON(ctx, fmt.Sprintf("/audio-separation-result/%d", runID), &res); err != nil {
		return SeparationResult{}, err
	}
	return res, nil
}
