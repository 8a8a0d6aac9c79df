// Package resolve turns final task snapshots into usable results: audio
// artifacts, transcripts, voice summaries, and separation stems. It owns the
// messy part of the provider contract, where a result may live behind a run
// id, a URL buried in the status message, or nowhere at all, and normalizes
// every variant into one predictable shape.
package resolve

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/EasterCompany/dex-camb-tools/audio"
	"github.com/EasterCompany/dex-camb-tools/log"
	"github.com/EasterCompany/dex-camb-tools/task"
)

// ResultFunc fetches the binary result of a completed run by its run id.
type ResultFunc func(ctx context.Context, runID int64) (data []byte, contentType string, err error)

// URLFunc fetches a direct result link found in a status message.
type URLFunc func(ctx context.Context, url string) (data []byte, contentType string, err error)

// Resolver locates the audio behind a completed task status.
type Resolver struct {
	// FetchResult is the primary path: the run-result endpoint.
	FetchResult ResultFunc
	// FetchURL is the fallback path for direct links.
	FetchURL URLFunc
}

// Audio resolves a completed status to an audio artifact.
//
// The primary path uses the status run id against the run-result endpoint.
// When the run id is absent or the primary fetch fails, the status message
// is scanned for a direct link and that is fetched instead. When neither
// path yields audio the result is the empty PCM artifact with a nil error:
// "no audio" is a documented degenerate outcome, not a failure. A transport
// error on the fallback fetch does surface, since at that point a concrete
// link existed and could not be read.
func (r Resolver) Audio(ctx context.Context, status task.Status) (audio.Artifact, error) {
	if status.RunID != 0 && r.FetchResult != nil {
		data, contentType, err := r.FetchResult(ctx, status.RunID)
		if err == nil {
			return audio.Artifact{Data: data, Format: audio.Detect(data, contentType)}, nil
		}
		log.Debug("run %d result fetch failed, trying status message: %v", status.RunID, err)
	}

	if url := urlFromMessage(status.Message); url != "" && r.FetchURL != nil {
		data, contentType, err := r.FetchURL(ctx, url)
		if err != nil {
			return audio.Artifact{}, err
		}
		return audio.Artifact{Data: data, Format: audio.Detect(data, contentType)}, nil
	}

	return audio.Artifact{Format: audio.FormatPCM}, nil
}

// urlFromMessage digs a result link out of the polymorphic status message.
// Objects are checked under output_url, audio_url, then url, with empty
// strings falling through to the next candidate; a bare string counts only
// when it starts with "http". Anything else yields nothing.
func urlFromMessage(message json.RawMessage) string {
	if len(message) == 0 {
		return ""
	}

	var obj map[string]any
	if err := json.Unmarshal(message, &obj); err == nil {
		for _, key := range []string{"output_url", "audio_url", "url"} {
			if s, ok := obj[key].(string); ok && s != "" {
				return s
			}
		}
		return ""
	}

	var s string
	if err := json.Unmarshal(message, &s); err == nil && strings.HasPrefix(s, "http") {
		return s
	}
	return ""
}
