package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/EasterCompany/dex-camb-tools/di"
	"github.com/EasterCompany/dex-camb-tools/languages"
	"github.com/EasterCompany/dex-camb-tools/worker"
)

// runBatch fans one translate-then-speak job per input line per target
// language out over the worker pool.
func runBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	file := fs.String("file", "", "text file with one entry per line, or - for stdin")
	source := fs.String("source", "english", "source language: code, tag or name")
	targets := fs.String("targets", "", "comma-separated target languages: codes, tags or names")
	voice := fs.Int64("voice", 0, "voice id for synthesis (default 147320)")
	workers := fs.Int("workers", 4, "concurrent jobs")
	fs.Parse(args)

	if *file == "" || *targets == "" {
		fatal("batch", errors.New("-file and -targets are required"))
	}

	srcCode, err := resolveLanguage(*source)
	if err != nil {
		fatal("resolving source language", err)
	}

	var targetLangs []languages.Language
	for _, t := range strings.Split(*targets, ",") {
		code, err := resolveLanguage(strings.TrimSpace(t))
		if err != nil {
			fatal("resolving target language", err)
		}
		l, ok := languages.ByCode(code)
		if !ok {
			fatal("resolving target language", fmt.Errorf("no synthesis tag known for language code %d", code))
		}
		targetLangs = append(targetLangs, l)
	}

	lines, err := readLines(*file)
	if err != nil {
		fatal("reading batch input", err)
	}
	if len(lines) == 0 {
		fatal("reading batch input", errors.New("no input lines"))
	}

	c, err := di.NewContainer()
	if err != nil {
		fatal("initialization failed", err)
	}
	defer c.Close()

	var jobs []worker.Job
	for i, line := range lines {
		for _, l := range targetLangs {
			jobs = append(jobs, worker.Job{
				ID:             fmt.Sprintf("%d-%s", i+1, l.Tag),
				Text:           line,
				SourceLanguage: srcCode,
				TargetLanguage: l.Code,
				LanguageTag:    l.Tag,
				VoiceID:        *voice,
			})
		}
	}

	pool, err := c.BatchPool(*workers, len(jobs))
	if err != nil {
		fatal("assembling batch pool", err)
	}

	fmt.Printf("%s--- Batch: %d jobs over %d workers ---%s\n", ColorBlue, len(jobs), *workers, ColorReset)
	start := time.Now()
	results := pool.RunBatch(context.Background(), jobs)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("  %s[FAIL]%s %-12s %v\n", ColorRed, ColorReset, r.JobID, r.Err)
			continue
		}
		fmt.Printf("  %s[OK]%s %-12s %s (%s)\n", ColorGreen, ColorReset, r.JobID, r.AudioPath, r.Elapsed.Round(time.Millisecond))
	}

	fmt.Printf("\n%d/%d jobs succeeded in %s.\n", len(results)-failed, len(results), time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}

func readLines(path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
