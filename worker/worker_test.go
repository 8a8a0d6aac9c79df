package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTool struct {
	name  string
	calls atomic.Int64
	fn    func(args json.RawMessage) (string, error)
}

func (f *fakeTool) Name() string            { return f.name }
func (f *fakeTool) Description() string     { return f.name }
func (f *fakeTool) Schema() json.RawMessage { return json.RawMessage(`{}`) }

func (f *fakeTool) Call(_ context.Context, args json.RawMessage) (string, error) {
	f.calls.Add(1)
	return f.fn(args)
}

func echoArgs(t *testing.T, args json.RawMessage) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(args, &m))
	return m
}

func TestRunBatchProcessesEveryJob(t *testing.T) {
	translate := &fakeTool{name: "camb_translation", fn: func(args json.RawMessage) (string, error) {
		var a struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(args, &a); err != nil {
			return "", err
		}
		return "translated: " + a.Text, nil
	}}
	speak := &fakeTool{name: "camb_tts", fn: func(args json.RawMessage) (string, error) {
		var a struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(args, &a); err != nil {
			return "", err
		}
		return "/tmp/" + strings.ReplaceAll(a.Text, " ", "-") + ".wav", nil
	}}

	var jobs []Job
	for i := 0; i < 8; i++ {
		jobs = append(jobs, Job{
			Text:           fmt.Sprintf("message %d", i),
			SourceLanguage: 1,
			TargetLanguage: 2,
			LanguageTag:    "es-es",
		})
	}

	pool := New(translate, speak, 3, 4)
	results := pool.RunBatch(context.Background(), jobs)

	require.Len(t, results, 8)
	seen := map[string]bool{}
	for _, res := range results {
		require.NoError(t, res.Err)
		assert.Equal(t, "translated: "+res.Text, res.Translated)
		assert.Equal(t, "/tmp/translated:-"+strings.ReplaceAll(res.Text, " ", "-")+".wav", res.AudioPath)
		assert.NotEmpty(t, res.JobID)
		assert.False(t, seen[res.JobID], "job IDs must be unique")
		seen[res.JobID] = true
	}
	assert.EqualValues(t, 8, translate.calls.Load())
	assert.EqualValues(t, 8, speak.calls.Load())
}

func TestRunBatchIsolatesJobFailures(t *testing.T) {
	boom := errors.New("synthesis exploded")
	translate := &fakeTool{name: "camb_translation", fn: func(json.RawMessage) (string, error) {
		return "hola", nil
	}}
	speak := &fakeTool{name: "camb_tts", fn: func(args json.RawMessage) (string, error) {
		if strings.Contains(string(args), "bad") {
			return "", boom
		}
		return "/tmp/ok.wav", nil
	}}

	pool := New(translate, speak, 2, 0)
	results := pool.RunBatch(context.Background(), []Job{
		{Text: "good morning", TargetLanguage: 2},
		{Text: "bad", TargetLanguage: 2},
	})

	require.Len(t, results, 2)
	var failed, succeeded int
	for _, res := range results {
		if res.Err != nil {
			failed++
			assert.ErrorIs(t, res.Err, boom)
			assert.Contains(t, res.Err.Error(), res.JobID)
		} else {
			succeeded++
			assert.Equal(t, "/tmp/ok.wav", res.AudioPath)
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, succeeded)
}

func TestZeroTargetLanguageSkipsTranslation(t *testing.T) {
	translate := &fakeTool{name: "camb_translation", fn: func(json.RawMessage) (string, error) {
		return "", errors.New("must not be called")
	}}
	speak := &fakeTool{name: "camb_tts", fn: func(args json.RawMessage) (string, error) {
		m := echoArgs(t, args)
		assert.Equal(t, "say this verbatim", m["text"])
		assert.Equal(t, "file_path", m["output_format"])
		return "/tmp/verbatim.wav", nil
	}}

	pool := New(translate, speak, 1, 0)
	results := pool.RunBatch(context.Background(), []Job{{Text: "say this verbatim"}})

	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "say this verbatim", results[0].Translated)
	assert.EqualValues(t, 0, translate.calls.Load())
}

func TestSpeakArgsOmitUnsetOptionals(t *testing.T) {
	speak := &fakeTool{name: "camb_tts", fn: func(args json.RawMessage) (string, error) {
		m := echoArgs(t, args)
		assert.NotContains(t, m, "language")
		assert.NotContains(t, m, "voice_id")
		return "/tmp/defaults.wav", nil
	}}

	pool := New(nil, speak, 1, 0)
	results := pool.RunBatch(context.Background(), []Job{{Text: "with tool defaults"}})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
}

func TestSubmitAssignsAndKeepsIDs(t *testing.T) {
	speak := &fakeTool{name: "camb_tts", fn: func(json.RawMessage) (string, error) {
		return "/tmp/a.wav", nil
	}}
	pool := New(nil, speak, 1, 2)
	pool.Start()

	assigned := pool.Submit(Job{Text: "first"})
	kept := pool.Submit(Job{ID: "job-42", Text: "second"})
	pool.Close()

	assert.NotEmpty(t, assigned)
	assert.Equal(t, "job-42", kept)

	ids := map[string]bool{}
	for res := range pool.Results() {
		ids[res.JobID] = true
	}
	assert.True(t, ids[assigned])
	assert.True(t, ids["job-42"])
}
