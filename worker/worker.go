// Package worker fans independent translate-then-speak jobs out over a
// fixed pool of goroutines. Each job is translated into its target language
// and the translation synthesized to an audio file; jobs never depend on
// each other, so a batch finishes in roughly the time of its slowest job
// rather than the sum.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/EasterCompany/dex-camb-tools/tools"
)

// Job holds all the necessary data for one translate-then-speak task.
type Job struct {
	Ctx context.Context
	// ID identifies the job in results. Submit assigns one when empty.
	ID   string
	Text string
	// SourceLanguage and TargetLanguage are the provider's integer codes.
	// A zero TargetLanguage skips translation and speaks Text as-is.
	SourceLanguage int
	TargetLanguage int
	// LanguageTag is the BCP-47 tag the synthesis runs under.
	LanguageTag string
	// VoiceID picks the voice; zero uses the tool default.
	VoiceID int64
}

// Result is the outcome of one job. Err is per-job: one failed job never
// aborts the rest of the batch.
type Result struct {
	JobID      string
	Text       string
	Translated string
	AudioPath  string
	Elapsed    time.Duration
	Err        error
}

// Pool manages a pool of workers and a queue of jobs.
type Pool struct {
	translate tools.Tool
	speak     tools.Tool

	jobs       chan Job
	results    chan Result
	maxWorkers int
	wg         sync.WaitGroup
}

// New creates a Pool running jobs through the given translation and speech
// tools. maxWorkers below one is raised to one.
func New(translate, speak tools.Tool, maxWorkers, queueSize int) *Pool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		translate:  translate,
		speak:      speak,
		jobs:       make(chan Job, queueSize),
		results:    make(chan Result, queueSize),
		maxWorkers: maxWorkers,
	}
}

// Start creates and starts the worker goroutines. Results closes once the
// queue is closed and every in-flight job has finished.
func (p *Pool) Start() {
	for i := 0; i < p.maxWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	go func() {
		p.wg.Wait()
		close(p.results)
	}()
}

// Submit adds a job to the queue and returns its ID.
func (p *Pool) Submit(job Job) string {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	p.jobs <- job
	return job.ID
}

// Close stops accepting jobs. Workers drain what is already queued.
func (p *Pool) Close() {
	close(p.jobs)
}

// Results delivers finished jobs in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// RunBatch is the whole lifecycle in one call: start the workers, submit
// every job under ctx, and collect all results. The pool cannot be reused
// afterwards.
func (p *Pool) RunBatch(ctx context.Context, jobs []Job) []Result {
	p.Start()
	go func() {
		for _, job := range jobs {
			job.Ctx = ctx
			p.Submit(job)
		}
		p.Close()
	}()

	results := make([]Result, 0, len(jobs))
	for res := range p.results {
		results = append(results, res)
	}
	return results
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.results <- p.process(job)
	}
}

func (p *Pool) process(job Job) Result {
	ctx := job.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	res := Result{JobID: job.ID, Text: job.Text}

	translated := job.Text
	if job.TargetLanguage != 0 {
		out, err := p.runTranslate(ctx, job)
		if err != nil {
			res.Err = fmt.Errorf("job %s: %w", job.ID, err)
			res.Elapsed = time.Since(start)
			return res
		}
		translated = out
	}
	res.Translated = translated

	path, err := p.runSpeak(ctx, job, translated)
	if err != nil {
		res.Err = fmt.Errorf("job %s: %w", job.ID, err)
		res.Elapsed = time.Since(start)
		return res
	}
	res.AudioPath = path
	res.Elapsed = time.Since(start)
	return res
}

func (p *Pool) runTranslate(ctx context.Context, job Job) (string, error) {
	args, err := json.Marshal(struct {
		Text           string `json:"text"`
		SourceLanguage int    `json:"source_language"`
		TargetLanguage int    `json:"target_language"`
	}{job.Text, job.SourceLanguage, job.TargetLanguage})
	if err != nil {
		return "", fmt.Errorf("failed to encode translation arguments: %w", err)
	}
	return p.translate.Call(ctx, args)
}

func (p *Pool) runSpeak(ctx context.Context, job Job, text string) (string, error) {
	args, err := json.Marshal(struct {
		Text         string `json:"text"`
		Language     string `json:"language,omitempty"`
		VoiceID      int64  `json:"voice_id,omitempty"`
		OutputFormat string `json:"output_format"`
	}{text, job.LanguageTag, job.VoiceID, "file_path"})
	if err != nil {
		return "", fmt.Errorf("failed to encode speech arguments: %w", err)
	}
	return p.speak.Call(ctx, args)
}
