package camb

import "context"

// TranslateRequest is the payload for plain text translation.
type TranslateRequest struct {
	Text           string `json:"text"`
	SourceLanguage int    `json:"source_language"`
	TargetLanguage int    `json:"target_language"`
	// Formality is 1 (formal) or 2 (informal); zero omits it.
	Formality int `json:"formality,omitempty"`
}

type translateEnvelope struct {
	Text string `json:"text"`
}

// Translate translates text between two of the provider's integer language
// codes.
//
// Known provider bug: the endpoint often answers 200 with the translated
// text as a plain-text body instead of the documented JSON envelope. That
// response fails to decode here and surfaces as *APIError{StatusCode: 200}
// whose Body is the translation itself. Callers that want the text must
// treat that error as success; the tool layer does.
func (c *Client) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	var env translateEnvelope
	if err := c.postJSON(ctx, "/translate", req, &env); err != nil {
		return "", err
	}
	return env.Text, nil
}
