package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EasterCompany/dex-camb-tools/log"
	"github.com/EasterCompany/dex-camb-tools/resolve"
)

const voiceListSchema = `{
  "type": "object",
  "properties": {
    "refresh": {
      "type": "boolean",
      "default": false,
      "description": "Bypass the cached catalog and fetch the voice list again."
    }
  }
}`

type voiceListArgs struct {
	Refresh bool `json:"refresh"`
}

// VoiceListTool lists the voices available for synthesis. The catalog
// changes rarely, so results are mirrored in the cache when one is
// configured.
type VoiceListTool struct {
	deps Deps
}

func NewVoiceListTool(deps Deps) *VoiceListTool {
	return &VoiceListTool{deps: deps}
}

func (t *VoiceListTool) Name() string { return "camb_voice_list" }

func (t *VoiceListTool) Description() string {
	return "List all available voices from CAMB AI. " +
		"Returns voice IDs, names, genders, ages, and languages. " +
		"Use this to find the right voice_id for TTS tools."
}

func (t *VoiceListTool) Schema() json.RawMessage { return json.RawMessage(voiceListSchema) }

func (t *VoiceListTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a voiceListArgs
	if err := decodeArgs(t.Name(), args, &a); err != nil {
		return "", err
	}

	if t.deps.Cache != nil && !a.Refresh {
		cached, err := t.deps.Cache.LoadVoices(ctx)
		if err != nil {
			log.Error("loading cached voice list", err)
		} else if cached != nil {
			return string(cached), nil
		}
	}

	voices, err := t.deps.Client.ListVoices(ctx)
	if err != nil {
		return "", fmt.Errorf("could not list voices: %w", err)
	}

	infos := make([]resolve.VoiceInfo, 0, len(voices))
	for _, v := range voices {
		infos = append(infos, resolve.NormalizeVoice(v))
	}
	out, err := jsonResult(infos)
	if err != nil {
		return "", err
	}

	if t.deps.Cache != nil {
		if err := t.deps.Cache.SaveVoices(ctx, []byte(out), t.deps.CacheTTL); err != nil {
			log.Error("caching voice list", err)
		}
	}
	return out, nil
}
