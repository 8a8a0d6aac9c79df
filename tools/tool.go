// Package tools exposes each Camb AI capability as a self-describing
// callable tool for an LLM agent's function-calling loop. A tool owns its
// name, description, and JSON schema, validates arguments at the boundary,
// and returns its result as a string: a file path, base64 audio, plain
// text, or indented JSON for structured payloads. Everything below the
// boundary trusts its inputs; everything above it is treated as hostile.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/EasterCompany/dex-camb-tools/cache"
	"github.com/EasterCompany/dex-camb-tools/camb"
	"github.com/EasterCompany/dex-camb-tools/store"
	"github.com/EasterCompany/dex-camb-tools/task"
)

// Tool is one callable capability, ready to be registered with an agent.
// Implementations are safe for concurrent calls.
type Tool interface {
	// Name is the stable identifier the agent calls the tool by.
	Name() string
	// Description tells the agent what the tool does and returns.
	Description() string
	// Schema is the JSON Schema of the tool's argument object.
	Schema() json.RawMessage
	// Call runs the tool with a JSON argument object.
	Call(ctx context.Context, args json.RawMessage) (string, error)
}

// Deps carries the shared collaborators every tool draws on. Cache may be
// nil; everything else must be set.
type Deps struct {
	Client *camb.Client
	Store  store.Store
	Cache  cache.Cache
	Poller task.Poller
	// CacheTTL bounds the lifetime of cached payloads. Zero means entries
	// never expire on their own.
	CacheTTL time.Duration
}

// ArgumentError is a boundary rejection: the arguments never reached the
// network. The agent can repair its call from Field and Msg.
type ArgumentError struct {
	Tool  string
	Field string
	Msg   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Tool, e.Field, e.Msg)
}

// decodeArgs unmarshals the argument object over pre-set defaults.
func decodeArgs(toolName string, raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return &ArgumentError{Tool: toolName, Field: "arguments", Msg: err.Error()}
	}
	return nil
}

// jsonResult renders a structured payload the way agents expect it:
// two-space indented JSON.
func jsonResult(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}

// requireOneAudioSource enforces the mutually exclusive audio_url /
// audio_file_path pair shared by the transcription and separation tools.
func requireOneAudioSource(toolName, audioURL, filePath string) error {
	if audioURL == "" && filePath == "" {
		return &ArgumentError{
			Tool:  toolName,
			Field: "audio source",
			Msg:   "Either audio_url or audio_file_path must be provided.",
		}
	}
	if audioURL != "" && filePath != "" {
		return &ArgumentError{
			Tool:  toolName,
			Field: "audio source",
			Msg:   "Provide only one of audio_url or audio_file_path, not both.",
		}
	}
	return nil
}
