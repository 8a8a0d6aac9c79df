package resolve

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EasterCompany/dex-camb-tools/audio"
	"github.com/EasterCompany/dex-camb-tools/camb"
	"github.com/EasterCompany/dex-camb-tools/task"
)

func TestAudioPrimaryPath(t *testing.T) {
	urlCalled := false
	r := Resolver{
		FetchResult: func(ctx context.Context, runID int64) ([]byte, string, error) {
			assert.Equal(t, int64(42), runID)
			return []byte("RIFFdata"), "audio/wav", nil
		},
		FetchURL: func(ctx context.Context, url string) ([]byte, string, error) {
			urlCalled = true
			return nil, "", nil
		},
	}

	status := task.Status{RunID: 42, Message: json.RawMessage(`{"output_url":"https://cdn/x.wav"}`)}
	artifact, err := r.Audio(context.Background(), status)
	require.NoError(t, err)
	assert.Equal(t, audio.FormatWAV, artifact.Format)
	assert.Equal(t, []byte("RIFFdata"), artifact.Data)
	assert.False(t, urlCalled, "primary success must not touch the fallback")
}

func TestAudioFallsBackWhenPrimaryFails(t *testing.T) {
	r := Resolver{
		FetchResult: func(ctx context.Context, runID int64) ([]byte, string, error) {
			return nil, "", &camb.APIError{StatusCode: 500, Body: "boom"}
		},
		FetchURL: func(ctx context.Context, url string) ([]byte, string, error) {
			assert.Equal(t, "https://cdn.example/out.mp3", url)
			return []byte("ID3audio"), "audio/mpeg", nil
		},
	}

	status := task.Status{RunID: 7, Message: json.RawMessage(`{"output_url":"https://cdn.example/out.mp3"}`)}
	artifact, err := r.Audio(context.Background(), status)
	require.NoError(t, err)
	assert.Equal(t, audio.FormatMP3, artifact.Format)
}

func TestAudioFallbackFromBareStringMessage(t *testing.T) {
	r := Resolver{
		FetchURL: func(ctx context.Context, url string) ([]byte, string, error) {
			assert.Equal(t, "https://cdn.example/direct.flac", url)
			return []byte("fLaCdata"), "", nil
		},
	}

	status := task.Status{Message: json.RawMessage(`"https://cdn.example/direct.flac"`)}
	artifact, err := r.Audio(context.Background(), status)
	require.NoError(t, err)
	assert.Equal(t, audio.FormatFLAC, artifact.Format)
}

func TestAudioEmptyWhenNothingResolvable(t *testing.T) {
	r := Resolver{
		FetchResult: func(ctx context.Context, runID int64) ([]byte, string, error) {
			t.Fatal("no run id, must not fetch")
			return nil, "", nil
		},
		FetchURL: func(ctx context.Context, url string) ([]byte, string, error) {
			t.Fatal("no url, must not fetch")
			return nil, "", nil
		},
	}

	status := task.Status{Message: json.RawMessage(`{"note":"done"}`)}
	artifact, err := r.Audio(context.Background(), status)
	require.NoError(t, err, "missing audio is degenerate, not an error")
	assert.True(t, artifact.Empty())
	assert.Equal(t, audio.FormatPCM, artifact.Format)
}

func TestAudioFallbackFetchErrorSurfaces(t *testing.T) {
	boom := errors.New("dns failure")
	r := Resolver{
		FetchURL: func(ctx context.Context, url string) ([]byte, string, error) {
			return nil, "", boom
		},
	}

	status := task.Status{Message: json.RawMessage(`"https://cdn.example/a.wav"`)}
	_, err := r.Audio(context.Background(), status)
	assert.ErrorIs(t, err, boom)
}

func TestURLFromMessage(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"output_url wins", `{"output_url":"https://a","audio_url":"https://b","url":"https://c"}`, "https://a"},
		{"empty output_url falls through", `{"output_url":"","audio_url":"https://b"}`, "https://b"},
		{"url is last resort", `{"url":"https://c"}`, "https://c"},
		{"bare http string", `"http://direct"`, "http://direct"},
		{"bare https string", `"https://direct"`, "https://direct"},
		{"bare non-http string", `"done"`, ""},
		{"object without urls", `{"progress":100}`, ""},
		{"non-string url value", `{"output_url":17}`, ""},
		{"number", `17`, ""},
		{"null", `null`, ""},
		{"absent", ``, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, urlFromMessage(json.RawMessage(c.message)))
		})
	}
}

func strPtr(s string) *string { return &s }

func TestNormalizeTranscriptDerivesSpeakers(t *testing.T) {
	in := camb.Transcription{
		Text: "hello there general",
		Segments: []camb.TranscriptionSegment{
			{Start: 0, End: 1.5, Text: "hello there", Speaker: strPtr("SPEAKER_00")},
			{Start: 1.5, End: 2.0, Text: "general", Speaker: strPtr("SPEAKER_01")},
			{Start: 2.0, End: 2.5, Text: "kenobi", Speaker: strPtr("SPEAKER_00")},
			{Start: 2.5, End: 3.0, Text: "...", Speaker: nil},
		},
	}

	out := NormalizeTranscript(in)
	assert.Equal(t, "hello there general", out.Text)
	require.Len(t, out.Segments, 4)
	assert.Equal(t, []string{"SPEAKER_00", "SPEAKER_01"}, out.Speakers, "first appearance order, no duplicates, no nulls")
}

func TestNormalizeTranscriptKeepsExplicitSpeakers(t *testing.T) {
	in := camb.Transcription{
		Text:     "x",
		Speakers: []string{"alice", "bob"},
		Segments: []camb.TranscriptionSegment{
			{Text: "x", Speaker: strPtr("SPEAKER_00")},
		},
	}
	out := NormalizeTranscript(in)
	assert.Equal(t, []string{"alice", "bob"}, out.Speakers)
}

func TestNormalizeTranscriptExplicitEmptySpeakerList(t *testing.T) {
	// An explicitly empty list from the provider is respected, not re-derived.
	in := camb.Transcription{
		Speakers: []string{},
		Segments: []camb.TranscriptionSegment{
			{Text: "x", Speaker: strPtr("SPEAKER_00")},
		},
	}
	out := NormalizeTranscript(in)
	assert.Empty(t, out.Speakers)
}

func TestNormalizeTranscriptEmptyResult(t *testing.T) {
	out := NormalizeTranscript(camb.Transcription{})
	assert.Equal(t, "", out.Text)
	assert.NotNil(t, out.Segments, "segments serialize as [], not null")
	assert.NotNil(t, out.Speakers, "speakers serialize as [], not null")

	encoded, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"","segments":[],"speakers":[]}`, string(encoded))
}

func intPtr(n int) *int { return &n }

func TestGenderStringIsTotal(t *testing.T) {
	assert.Equal(t, "not_specified", GenderString(0))
	assert.Equal(t, "male", GenderString(1))
	assert.Equal(t, "female", GenderString(2))
	assert.Equal(t, "not_applicable", GenderString(9))
	assert.Equal(t, "unknown", GenderString(3))
	assert.Equal(t, "unknown", GenderString(-1))
	assert.Equal(t, "unknown", GenderString(100))
}

func TestNormalizeVoiceTypedShape(t *testing.T) {
	v := camb.Voice{ID: 147320, VoiceName: "Aria", Gender: intPtr(2), Age: intPtr(30), Language: intPtr(1)}
	info := NormalizeVoice(v)
	assert.Equal(t, int64(147320), info.ID)
	assert.Equal(t, "Aria", info.Name)
	assert.Equal(t, "female", info.Gender)
	assert.Equal(t, 30, *info.Age)
	assert.Equal(t, 1, *info.Language)
}

func TestNormalizeVoiceNameFallbacks(t *testing.T) {
	assert.Equal(t, "plain", NormalizeVoice(camb.Voice{Name: "plain"}).Name)
	assert.Equal(t, "Unknown", NormalizeVoice(camb.Voice{ID: 5}).Name)
	assert.Equal(t, "not_specified", NormalizeVoice(camb.Voice{ID: 5}).Gender)
}

func TestNormalizeVoiceMapShape(t *testing.T) {
	raw := map[string]any{
		"id":         float64(900),
		"voice_name": "Custom Narrator",
		"gender":     float64(9),
		"age":        float64(41),
	}
	info := NormalizeVoice(raw)
	assert.Equal(t, int64(900), info.ID)
	assert.Equal(t, "Custom Narrator", info.Name)
	assert.Equal(t, "not_applicable", info.Gender)
	assert.Equal(t, 41, *info.Age)
	assert.Nil(t, info.Language)
}

func TestNormalizeVoiceUnknownShape(t *testing.T) {
	info := NormalizeVoice(42)
	assert.Equal(t, "Unknown", info.Name)
	assert.Equal(t, "not_specified", info.Gender)
}
