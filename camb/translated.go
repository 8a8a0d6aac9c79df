package camb

import (
	"context"

	"github.com/EasterCompany/dex-camb-tools/task"
)

// TranslatedTTSRequest asks the provider to translate text and speak the
// result in one task. Languages are the provider's integer codes, not
// BCP-47 tags.
type TranslatedTTSRequest struct {
	Text           string `json:"text"`
	VoiceID        int64  `json:"voice_id"`
	SourceLanguage int    `json:"source_language"`
	TargetLanguage int    `json:"target_language"`
	// Formality is 1 (formal) or 2 (informal); zero omits it.
	Formality int `json:"formality,omitempty"`
}

// CreateTranslatedTTS submits a translated-TTS task.
func (c *Client) CreateTranslatedTTS(ctx context.Context, req TranslatedTTSRequest) (TaskCreated, error) {
	var created TaskCreated
	if err := c.postJSON(ctx, "/translated-tts", req, &created); err != nil {
		return TaskCreated{}, err
	}
	return created, nil
}

// TranslatedTTSStatus fetches one status snapshot for a translated-TTS task.
// Its signature matches task.StatusFunc so it can be handed to a Poller.
func (c *Client) TranslatedTTSStatus(ctx context.Context, taskID string) (task.Status, error) {
	return c.taskStatus(ctx, "/translated-tts", taskID)
}
