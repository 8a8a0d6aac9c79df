package camb

import (
	"context"
	"fmt"

	"github.com/EasterCompany/dex-camb-tools/task"
)

// Audio types accepted by the sound generation endpoint.
const (
	AudioTypeMusic = "music"
	AudioTypeSound = "sound"
)

// TextToSoundRequest generates music or sound effects from a description.
type TextToSoundRequest struct {
	Prompt string `json:"prompt"`
	// Duration in seconds; zero lets the provider choose.
	Duration float64 `json:"duration,omitempty"`
	// AudioType is "music" or "sound"; empty lets the provider choose.
	AudioType string `json:"audio_type,omitempty"`
}

// CreateTextToSound submits a sound generation task.
func (c *Client) CreateTextToSound(ctx context.Context, req TextToSoundRequest) (TaskCreated, error) {
	var created TaskCreated
	if err := c.postJSON(ctx, "/text-to-sound", req, &created); err != nil {
		return TaskCreated{}, err
	}
	return created, nil
}

// TextToSoundStatus fetches one status snapshot for a sound generation task.
func (c *Client) TextToSoundStatus(ctx context.Context, taskID string) (task.Status, error) {
	return c.taskStatus(ctx, "/text-to-sound", taskID)
}

// TextToSoundResult drains the audio stream produced by a completed run,
// concatenating chunks in arrival order.
func (c *Client) TextToSoundResult(ctx context.Context, runID int64) ([]byte, string, error) {
	return c.getBinary(ctx, fmt.Sprintf("/text-to-sound-result/%d", runID))
}
