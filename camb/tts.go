package camb

import (
	"context"
	"fmt"
)

// Speech model identifiers accepted by the TTS endpoint.
const (
	ModelMarsFlash    = "mars-flash"
	ModelMarsPro      = "mars-pro"
	ModelMarsInstruct = "mars-instruct"
)

// TTSOutputConfiguration selects the container for synthesized audio.
type TTSOutputConfiguration struct {
	Format string `json:"format"`
}

// TTSVoiceSettings tunes delivery of the synthesized voice.
type TTSVoiceSettings struct {
	Speed float64 `json:"speed"`
}

// TTSRequest is the payload for the streaming TTS endpoint.
type TTSRequest struct {
	Text                string                  `json:"text"`
	Language            string                  `json:"language"`
	VoiceID             int64                   `json:"voice_id"`
	SpeechModel         string                  `json:"speech_model"`
	OutputConfiguration *TTSOutputConfiguration `json:"output_configuration,omitempty"`
	VoiceSettings       *TTSVoiceSettings       `json:"voice_settings,omitempty"`
	// UserInstructions only has effect with the mars-instruct model.
	UserInstructions string `json:"user_instructions,omitempty"`
}

// TTS synthesizes speech and drains the streamed audio to completion,
// returning the bytes in arrival order plus the response content type.
// This is the one speech capability that answers inline instead of
// through a task.
func (c *Client) TTS(ctx context.Context, req TTSRequest) ([]byte, string, error) {
	return c.postBinary(ctx, "/tts-stream", req)
}

// TTSResult fetches the audio produced by a completed run. This is the
// primary path for resolving any speech-producing task once its status
// carries a run id.
func (c *Client) TTSResult(ctx context.Context, runID int64) ([]byte, string, error) {
	return c.getBinary(ctx, fmt.Sprintf("/tts-result/%d", runID))
}
