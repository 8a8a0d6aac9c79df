package resolve

import "github.com/EasterCompany/dex-camb-tools/camb"

// VoiceInfo is the normalized voice-catalog entry handed to agents.
type VoiceInfo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Age      *int   `json:"age"`
	Language *int   `json:"language"`
}

// GenderString translates the provider's integer gender code.
func GenderString(code int) string {
	switch code {
	case 0:
		return "not_specified"
	case 1:
		return "male"
	case 2:
		return "female"
	case 9:
		return "not_applicable"
	default:
		return "unknown"
	}
}

// NormalizeVoice accepts either the typed catalog entry or a raw decoded
// JSON object; the provider's SDKs have returned both shapes over time.
// Missing names become "Unknown" and a missing gender code reads as
// not specified.
func NormalizeVoice(v any) VoiceInfo {
	switch voice := v.(type) {
	case camb.Voice:
		info := VoiceInfo{
			ID:       voice.ID,
			Name:     firstNonEmpty(voice.VoiceName, voice.Name, "Unknown"),
			Gender:   GenderString(0),
			Age:      voice.Age,
			Language: voice.Language,
		}
		if voice.Gender != nil {
			info.Gender = GenderString(*voice.Gender)
		}
		return info
	case map[string]any:
		info := VoiceInfo{
			ID:       intField(voice, "id"),
			Name:     firstNonEmpty(stringField(voice, "voice_name"), stringField(voice, "name"), "Unknown"),
			Gender:   GenderString(int(intField(voice, "gender"))),
			Age:      intPtrField(voice, "age"),
			Language: intPtrField(voice, "language"),
		}
		return info
	default:
		return VoiceInfo{Name: "Unknown", Gender: GenderString(0)}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func intField(m map[string]any, key string) int64 {
	// JSON numbers decode as float64.
	if f, ok := m[key].(float64); ok {
		return int64(f)
	}
	return 0
}

func intPtrField(m map[string]any, key string) *int {
	if f, ok := m[key].(float64); ok {
		n := int(f)
		return &n
	}
	return nil
}
