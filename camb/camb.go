// Package camb is a thin HTTP client for the Camb AI multilingual audio API.
// It covers the capabilities the tool layer exposes: streaming TTS,
// translated TTS, translation, transcription, voice listing and cloning,
// sound generation, and audio separation. Long-running capabilities follow
// the provider's submit/poll/fetch shape; the submit and fetch halves live
// here while the polling loop lives in the task package.
package camb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/EasterCompany/dex-camb-tools/task"
)

const (
	// DefaultBaseURL is the provider's public API root.
	DefaultBaseURL = "https://client.camb.ai/apis"
	// DefaultTimeout bounds a single HTTP exchange, not a whole poll loop.
	DefaultTimeout = 60 * time.Second
)

// Options configures a Client. APIKey is the only required field.
type Options struct {
	APIKey     string
	BaseURL    string        // defaults to DefaultBaseURL
	Timeout    time.Duration // defaults to DefaultTimeout; ignored when HTTPClient is set
	HTTPClient *http.Client  // defaults to a fresh client with Timeout
}

// Client talks to the Camb AI API. It holds no per-call state, so one Client
// can serve any number of concurrent tool invocations; the underlying
// connection pool is the only shared resource.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// New creates a Client from opts.
func New(opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("camb: api key is required (set Options.APIKey or the CAMB_API_KEY environment variable)")
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     opts.APIKey,
	}, nil
}

// BaseURL returns the API root the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// newRequest builds an authenticated request for an API path.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s %s request: %w", method, path, err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	return req, nil
}

// doJSON executes req and decodes the response body into out. Error statuses
// and undecodable bodies both surface as *APIError so callers can inspect
// the status code and raw body.
func (c *Client) doJSON(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", req.URL.Path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return nil
}

// postJSON sends body as JSON and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", path, err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req, out)
}

// getJSON fetches path and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

// postMultipart uploads form fields plus an optional local file and decodes
// the response into out.
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, fileField, filePath string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}
	if fileField != "" {
		f, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", filePath, err)
		}
		defer func() { _ = f.Close() }()
		part, err := w.CreateFormFile(fileField, filepath.Base(filePath))
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return fmt.Errorf("failed to copy %s into form: %w", filePath, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.doJSON(req, out)
}

// getBinary fetches an API path that answers with an audio stream. The body
// is drained to completion, chunks concatenated in arrival order. Returns
// the bytes and the content-type header.
func (c *Client) getBinary(ctx context.Context, path string) ([]byte, string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, "", err
	}
	return c.doBinary(req)
}

// postBinary sends a JSON payload to an endpoint that answers with an audio
// stream.
func (c *Client) postBinary(ctx context.Context, path string, in any) ([]byte, string, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal %s payload: %w", path, err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doBinary(req)
}

func (c *Client) doBinary(req *http.Request) ([]byte, string, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to reach %s: %w", req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to drain response from %s: %w", req.URL.Path, err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// Get fetches an arbitrary URL, used when a task status hands back a direct
// result link. The link is typically a presigned storage URL, so no API key
// is attached, and the body is used whatever the status code; the provider
// has been seen serving valid audio alongside non-200 statuses.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request for %s: %w", rawURL, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", rawURL, err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// statusEnvelope is the provider's task status wire shape, shared by every
// async capability.
type statusEnvelope struct {
	Status  string          `json:"status"`
	RunID   int64           `json:"run_id"`
	Error   string          `json:"error"`
	Message json.RawMessage `json:"message"`
}

// taskStatus fetches and normalizes one status snapshot from prefix/{taskID}.
func (c *Client) taskStatus(ctx context.Context, prefix, taskID string) (task.Status, error) {
	var env statusEnvelope
	if err := c.getJSON(ctx, prefix+"/"+url.PathEscape(taskID), &env); err != nil {
		return task.Status{}, err
	}
	return task.Status{
		TaskID:  taskID,
		State:   task.ParseState(env.Status),
		Raw:     env.Status,
		RunID:   env.RunID,
		Error:   env.Error,
		Message: env.Message,
	}, nil
}

// TaskCreated is the provider's acknowledgment of a submitted task.
type TaskCreated struct {
	TaskID string `json:"task_id"`
}
