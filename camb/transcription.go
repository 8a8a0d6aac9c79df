package camb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/EasterCompany/dex-camb-tools/task"
)

// TranscriptionRequest submits audio for speech-to-text. Exactly one of
// AudioURL and FilePath must be set; the tool layer enforces that before
// the request is built.
type TranscriptionRequest struct {
	Language int
	AudioURL string
	FilePath string
}

// TranscriptionSegment is one diarized span of a transcript.
type TranscriptionSegment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker *string `json:"speaker"`
}

// Transcription is the provider's transcription result. A nil Speakers
// slice means the provider omitted the field entirely, which is distinct
// from an explicitly empty list.
type Transcription struct {
	Text     string                 `json:"text"`
	Segments []TranscriptionSegment `json:"segments"`
	Speakers []string               `json:"speakers"`
}

// CreateTranscription submits a transcription task. Local files are
// uploaded as multipart form data; URLs are passed by reference.
func (c *Client) CreateTranscription(ctx context.Context, req TranscriptionRequest) (TaskCreated, error) {
	fields := map[string]string{"language": strconv.Itoa(req.Language)}
	fileField := ""
	if req.AudioURL != "" {
		fields["audio_url"] = req.AudioURL
	} else {
		fileField = "media_file"
	}

	var created TaskCreated
	if err := c.postMultipart(ctx, "/transcribe", fields, fileField, req.FilePath, &created); err != nil {
		return TaskCreated{}, err
	}
	return created, nil
}

// TranscriptionStatus fetches one status snapshot for a transcription task.
func (c *Client) TranscriptionStatus(ctx context.Context, taskID string) (task.Status, error) {
	return c.taskStatus(ctx, "/transcribe", taskID)
}

// TranscriptionResult fetches the transcript produced by a completed run.
func (c *Client) TranscriptionResult(ctx context.Context, runID int64) (Transcription, error) {
	var t Transcription
	if err := c.getJSON(ctx, fmt.Sprintf("/transcription-result/%d", runID), &t); err != nil {
		return Transcription{}, err
	}
	return t, nil
}
