package resolve

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EasterCompany/dex-camb-tools/camb"
)

func noPersist(t *testing.T) PersistFunc {
	return func(data []byte, pattern string) (string, error) {
		t.Fatalf("unexpected persist call with pattern %s", pattern)
		return "", nil
	}
}

func TestNormalizeStemsURLFields(t *testing.T) {
	res := camb.SeparationResult{
		VocalsURL:     "https://cdn/vocals.wav",
		BackgroundURL: "https://cdn/background.wav",
	}
	stems, err := NormalizeStems(res, noPersist(t))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/vocals.wav", *stems.Vocals)
	assert.Equal(t, "https://cdn/background.wav", *stems.Background)
	assert.Equal(t, "completed", stems.Status)
}

func TestNormalizeStemsNewestFieldsWin(t *testing.T) {
	res := camb.SeparationResult{
		VoiceURL:        "https://cdn/voice.wav",
		VocalsURL:       "https://cdn/old-vocals.wav",
		Vocals:          json.RawMessage(`"https://cdn/oldest.wav"`),
		InstrumentalURL: "https://cdn/instrumental.wav",
		BackgroundURL:   "https://cdn/old-background.wav",
	}
	stems, err := NormalizeStems(res, noPersist(t))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/voice.wav", *stems.Vocals)
	assert.Equal(t, "https://cdn/instrumental.wav", *stems.Background)
}

func TestNormalizeStemsBareURLValue(t *testing.T) {
	res := camb.SeparationResult{
		Vocals: json.RawMessage(`"https://cdn/only-vocals.wav"`),
	}
	stems, err := NormalizeStems(res, noPersist(t))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/only-vocals.wav", *stems.Vocals)
	assert.Nil(t, stems.Background)
}

func TestNormalizeStemsInlineAudioPersisted(t *testing.T) {
	inline := base64.StdEncoding.EncodeToString([]byte("RIFFvocaldata"))
	res := camb.SeparationResult{
		Vocals: json.RawMessage(`"` + inline + `"`),
	}

	var gotData []byte
	persist := func(data []byte, pattern string) (string, error) {
		gotData = data
		assert.Contains(t, pattern, "vocals")
		return "/tmp/camb-123_vocals.wav", nil
	}

	stems, err := NormalizeStems(res, persist)
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFFvocaldata"), gotData)
	assert.Equal(t, "/tmp/camb-123_vocals.wav", *stems.Vocals)
}

func TestNormalizeStemsNothingProduced(t *testing.T) {
	stems, err := NormalizeStems(camb.SeparationResult{}, noPersist(t))
	require.NoError(t, err)
	assert.Nil(t, stems.Vocals)
	assert.Nil(t, stems.Background)
	assert.Equal(t, "completed", stems.Status)

	encoded, err := json.Marshal(stems)
	require.NoError(t, err)
	assert.JSONEq(t, `{"vocals":null,"background":null,"status":"completed"}`, string(encoded))
}
