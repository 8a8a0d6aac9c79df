package resolve

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/EasterCompany/dex-camb-tools/camb"
)

// Stems is the agent-facing separation result. A stem is a URL or local
// file path, or null when the provider produced nothing for that track.
type Stems struct {
	Vocals     *string `json:"vocals"`
	Background *string `json:"background"`
	Status     string  `json:"status"`
}

// PersistFunc writes inline audio to disk and returns its path. The pattern
// follows os.CreateTemp conventions.
type PersistFunc func(data []byte, pattern string) (string, error)

// NormalizeStems reconciles the provider's separation field variants into
// two tracks. Per track the newest field wins: voice_url over vocals_url
// over the bare vocals value (and instrumental_url over background_url over
// background). A bare value holding inline base64 audio is persisted via
// persist and replaced by the file path.
func NormalizeStems(res camb.SeparationResult, persist PersistFunc) (Stems, error) {
	vocals, err := stemRef(res.VoiceURL, res.VocalsURL, res.Vocals, "vocals", persist)
	if err != nil {
		return Stems{}, err
	}
	background, err := stemRef(res.InstrumentalURL, res.BackgroundURL, res.Background, "background", persist)
	if err != nil {
		return Stems{}, err
	}
	return Stems{Vocals: vocals, Background: background, Status: "completed"}, nil
}

func stemRef(primary, secondary string, raw json.RawMessage, label string, persist PersistFunc) (*string, error) {
	if primary != "" {
		return &primary, nil
	}
	if secondary != "" {
		return &secondary, nil
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "http") {
		return &s, nil
	}
	// Inline audio travels base64-encoded; anything that does not decode is
	// some other reference and passes through verbatim.
	if data, err := base64.StdEncoding.DecodeString(s); err == nil && len(data) > 0 {
		if persist == nil {
			return nil, fmt.Errorf("inline %s audio received but no store configured", label)
		}
		path, err := persist(data, "camb-*_"+label+".wav")
		if err != nil {
			return nil, fmt.Errorf("failed to persist inline %s audio: %w", label, err)
		}
		return &path, nil
	}
	return &s, nil
}
