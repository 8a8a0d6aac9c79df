package tools

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EasterCompany/dex-camb-tools/cache"
	"github.com/EasterCompany/dex-camb-tools/camb"
	"github.com/EasterCompany/dex-camb-tools/store"
	"github.com/EasterCompany/dex-camb-tools/task"
)

// testDeps wires a tool dependency set against an httptest server: a real
// client, a file store rooted in the test's temp dir, no cache, and a
// poller that never actually sleeps.
func testDeps(t *testing.T, handler http.HandlerFunc) Deps {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := camb.New(camb.Options{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	return Deps{
		Client: client,
		Store:  st,
		Poller: task.Poller{
			MaxAttempts: 5,
			Interval:    time.Millisecond,
			Sleep:       func(context.Context, time.Duration) error { return nil },
		},
	}
}

func argErr(t *testing.T, err error) *ArgumentError {
	t.Helper()
	var ae *ArgumentError
	require.True(t, errors.As(err, &ae), "expected ArgumentError, got %v", err)
	return ae
}

func TestDecodeArgsEmptyKeepsDefaults(t *testing.T) {
	a := ttsArgs{Language: "en-us", Speed: 1.0}
	require.NoError(t, decodeArgs("camb_tts", nil, &a))
	assert.Equal(t, "en-us", a.Language)
	assert.Equal(t, 1.0, a.Speed)
}

func TestDecodeArgsRejectsMalformedJSON(t *testing.T) {
	var a ttsArgs
	err := decodeArgs("camb_tts", []byte(`{"text":`), &a)
	ae := argErr(t, err)
	assert.Equal(t, "arguments", ae.Field)
	assert.Contains(t, ae.Error(), "camb_tts: invalid arguments")
}

func TestRequireOneAudioSource(t *testing.T) {
	err := requireOneAudioSource("camb_transcription", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Either audio_url or audio_file_path must be provided.")

	err = requireOneAudioSource("camb_transcription", "https://a", "/tmp/a.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Provide only one of audio_url or audio_file_path, not both.")

	assert.NoError(t, requireOneAudioSource("camb_transcription", "https://a", ""))
	assert.NoError(t, requireOneAudioSource("camb_transcription", "", "/tmp/a.wav"))
}

// fakeCache is an in-memory stand-in for the Redis cache.
type fakeCache struct {
	voices    []byte
	voicesTTL time.Duration
	saves     int
	records   []cache.InvocationRecord
}

func (f *fakeCache) SaveAudio(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

func (f *fakeCache) LoadAudio(_ context.Context, _ string) ([]byte, error) { return nil, nil }

func (f *fakeCache) SaveVoices(_ context.Context, voices []byte, ttl time.Duration) error {
	f.voices = voices
	f.voicesTTL = ttl
	f.saves++
	return nil
}

func (f *fakeCache) LoadVoices(_ context.Context) ([]byte, error) { return f.voices, nil }

func (f *fakeCache) RecordInvocation(_ context.Context, rec cache.InvocationRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeCache) RecentInvocations(_ context.Context, n int64) ([]cache.InvocationRecord, error) {
	if n > int64(len(f.records)) {
		n = int64(len(f.records))
	}
	return f.records[:n], nil
}

func (f *fakeCache) CleanAllAudio(_ context.Context) (int64, error) { return 0, nil }

func (f *fakeCache) Ping(_ context.Context) error { return nil }

func (f *fakeCache) Close() error { return nil }
