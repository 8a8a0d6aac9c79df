// Package cleanup removes stale audio artifacts from the artifact
// directory. A sweep only ever runs when the user asks for one; tool calls
// never clean up after themselves, since the returned file paths must stay
// valid for the agent that received them.
package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/EasterCompany/dex-camb-tools/log"
)

// artifactPrefix matches the file names the store creates.
const artifactPrefix = "camb-"

// Result holds the outcome of a sweep.
type Result struct {
	Dir        string
	Count      int
	BytesFreed int64
}

// Sweep deletes artifact files in dir older than maxAge. A zero maxAge
// deletes every artifact. Files that cannot be removed are logged and
// skipped rather than aborting the sweep; only files the store itself
// created (the camb- prefix) are ever touched.
func Sweep(dir string, maxAge time.Duration) (Result, error) {
	res := Result{Dir: dir}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return res, fmt.Errorf("could not read artifact directory %s: %w", dir, err)
	}

	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), artifactPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Error("removing artifact "+path, err)
			continue
		}
		res.Count++
		res.BytesFreed += info.Size()
	}
	return res, nil
}
