package camb

import (
	"context"
	"strconv"
)

// Voice is one entry of the provider's voice catalog. Optional attributes
// are pointers because the provider omits them for many stock voices.
type Voice struct {
	ID        int64  `json:"id"`
	VoiceName string `json:"voice_name"`
	Name      string `json:"name"`
	Gender    *int   `json:"gender"`
	Age       *int   `json:"age"`
	Language  *int   `json:"language"`
}

// ListVoices fetches the full voice catalog, stock and custom.
func (c *Client) ListVoices(ctx context.Context) ([]Voice, error) {
	var voices []Voice
	if err := c.getJSON(ctx, "/list-voices", &voices); err != nil {
		return nil, err
	}
	return voices, nil
}

// VoiceCloneRequest creates a custom voice from a reference recording of at
// least two seconds.
type VoiceCloneRequest struct {
	VoiceName string
	FilePath  string
	// Gender uses the provider's integer code: 0 not specified, 1 male,
	// 2 female, 9 not applicable.
	Gender      int
	Description string
	Age         int
	Language    int
}

// VoiceCreated is the provider's acknowledgment of a cloned voice. Some
// deployments answer with voice_id, older ones with bare id.
type VoiceCreated struct {
	VoiceID int64  `json:"voice_id"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// CreateCustomVoice uploads a reference recording and registers a custom
// voice built from it.
func (c *Client) CreateCustomVoice(ctx context.Context, req VoiceCloneRequest) (VoiceCreated, error) {
	fields := map[string]string{
		"voice_name": req.VoiceName,
		"gender":     strconv.Itoa(req.Gender),
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Age != 0 {
		fields["age"] = strconv.Itoa(req.Age)
	}
	if req.Language != 0 {
		fields["language"] = strconv.Itoa(req.Language)
	}

	var created VoiceCreated
	if err := c.postMultipart(ctx, "/create-custom-voice", fields, "file", req.FilePath, &created); err != nil {
		return VoiceCreated{}, err
	}
	return created, nil
}
