package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/EasterCompany/dex-camb-tools/cache"
	"github.com/EasterCompany/dex-camb-tools/camb"
	"github.com/EasterCompany/dex-camb-tools/cleanup"
	"github.com/EasterCompany/dex-camb-tools/config"
	"github.com/EasterCompany/dex-camb-tools/health"
	"github.com/EasterCompany/dex-camb-tools/languages"
	"github.com/EasterCompany/dex-camb-tools/reporting"
	"github.com/EasterCompany/dex-camb-tools/system"
)

// runDoctor probes every dependency and prints a report. Unlike the tool
// commands it never needs a working API key, so problems with the key are
// findings in the report instead of startup failures.
func runDoctor(args []string) {
	fs := flag.NewFlagSet("doctor", flag.ExitOnError)
	recent := fs.Int64("recent", 10, "number of recent invocations to show")
	fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		fatal("loading config", err)
	}

	ctx := context.Background()
	report := &reporting.DoctorReport{}

	key := cfg.APIKey
	if key == "" {
		key = os.Getenv(config.EnvAPIKey)
	}
	if key == "" {
		report.Checks = append(report.Checks, health.Check{
			Name:   "camb api",
			Detail: "no API key: set api_key in the config file or export " + config.EnvAPIKey,
		})
	} else {
		client, err := camb.New(camb.Options{APIKey: key, BaseURL: cfg.BaseURL, Timeout: cfg.Timeout()})
		if err != nil {
			fatal("building API client", err)
		}
		report.Checks = append(report.Checks, health.CheckAPI(ctx, client))
	}

	var c cache.Cache
	db, cacheErr := cache.New(&cfg.Redis)
	if db != nil {
		c = db
		defer func() { _ = db.Close() }()
	}
	if cacheErr != nil {
		report.Checks = append(report.Checks, health.Check{Name: "cache", Detail: cacheErr.Error()})
	} else {
		report.Checks = append(report.Checks, health.CheckCache(ctx, c, &cfg.Redis))
	}
	report.Checks = append(report.Checks, health.CheckArtifactDir(cfg.ArtifactDir))

	report.CPUUsage, report.MemoryUsage, report.Disk, report.HostProbeErr = probeHost(cfg.ArtifactDir)

	if c != nil {
		recs, err := c.RecentInvocations(ctx, *recent)
		if err == nil {
			report.Recent = recs
		}
	}

	fmt.Println(report.String())
	if !report.Healthy() {
		os.Exit(1)
	}
	fmt.Printf("\n%s✅ All checks passed.%s\n", ColorGreen, ColorReset)
}

func probeHost(artifactDir string) (cpu, mem float64, disk system.DiskUsage, err error) {
	if cpu, err = system.GetCPUUsage(); err != nil {
		return
	}
	if mem, err = system.GetMemoryUsage(); err != nil {
		return
	}
	if artifactDir == "" {
		artifactDir = os.TempDir()
	}
	disk, err = system.GetDiskUsage(artifactDir)
	return
}

// runClean deletes generated artifacts. Sweeping is strictly on demand:
// nothing in the toolkit ever removes an artifact on its own.
func runClean(args []string) {
	fs := flag.NewFlagSet("clean", flag.ExitOnError)
	olderThan := fs.Duration("older-than", 0, "only delete artifacts older than this, e.g. 24h (default: all)")
	purgeCache := fs.Bool("cache", false, "also purge mirrored audio from the cache")
	fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		fatal("loading config", err)
	}
	dir := cfg.ArtifactDir
	if dir == "" {
		dir = os.TempDir()
	}

	res, err := cleanup.Sweep(dir, *olderThan)
	if err != nil {
		fatal("sweeping artifacts", err)
	}
	fmt.Printf("%s[OK]%s Removed %d artifacts from %s, freeing %s.\n",
		ColorGreen, ColorReset, res.Count, res.Dir, reporting.HumanReadableBytes(uint64(res.BytesFreed)))

	if !*purgeCache {
		return
	}
	db, err := cache.New(&cfg.Redis)
	if err != nil {
		fatal("connecting to cache", err)
	}
	if db == nil {
		fmt.Printf("%s[WARN]%s Cache is not configured; nothing to purge.\n", ColorYellow, ColorReset)
		return
	}
	defer func() { _ = db.Close() }()

	n, err := db.CleanAllAudio(context.Background())
	if err != nil {
		fatal("purging cached audio", err)
	}
	fmt.Printf("%s[OK]%s Purged %d cached audio entries.\n", ColorGreen, ColorReset, n)
}

func runLanguages() {
	fmt.Printf("%s--- Supported Languages ---%s\n", ColorBlue, ColorReset)
	fmt.Printf("%4s  %-28s %s\n", "CODE", "NAME", "TAG")
	for _, l := range languages.All() {
		fmt.Printf("%4d  %-28s %s\n", l.Code, l.Name, l.Tag)
	}
}
