// Package health probes the toolkit's external dependencies: the Camb API,
// the optional Redis cache, and the artifact directory. Each probe returns
// a Check rather than failing, so the doctor can show every problem at once.
package health

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/EasterCompany/dex-camb-tools/cache"
	"github.com/EasterCompany/dex-camb-tools/camb"
	"github.com/EasterCompany/dex-camb-tools/config"
)

// Check is the outcome of one probe.
type Check struct {
	Name   string
	OK     bool
	Detail string
	// Latency is set by probes that measure a round trip.
	Latency time.Duration
}

// CheckAPI verifies the provider is reachable and the API key valid by
// listing voices, the cheapest authenticated read the API offers.
func CheckAPI(ctx context.Context, client *camb.Client) Check {
	c := Check{Name: "camb api"}
	if client == nil {
		c.Detail = "client not initialized"
		return c
	}
	start := time.Now()
	voices, err := client.ListVoices(ctx)
	c.Latency = time.Since(start)
	if err != nil {
		c.Detail = err.Error()
		return c
	}
	c.OK = true
	c.Detail = fmt.Sprintf("%d voices in %s", len(voices), c.Latency.Round(time.Millisecond))
	return c
}

// CheckCache reports the cache connection state. An unconfigured cache is
// healthy: the toolkit runs fully without one.
func CheckCache(ctx context.Context, c cache.Cache, cfg *config.RedisConfig) Check {
	check := Check{Name: "cache"}
	if cfg == nil || !cfg.Enabled || cfg.Addr == "" {
		check.OK = true
		check.Detail = "not configured"
		return check
	}
	if c == nil {
		check.Detail = "initialization failed"
		return check
	}
	if err := c.Ping(ctx); err != nil {
		check.Detail = err.Error()
		return check
	}
	check.OK = true
	check.Detail = fmt.Sprintf("connected to %s", cfg.Addr)
	return check
}

// CheckArtifactDir verifies produced audio has somewhere to go by writing
// and removing a probe file.
func CheckArtifactDir(dir string) Check {
	check := Check{Name: "artifact dir"}
	if dir == "" {
		dir = os.TempDir()
	}
	f, err := os.CreateTemp(dir, "camb-doctor-*")
	if err != nil {
		check.Detail = err.Error()
		return check
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	check.OK = true
	check.Detail = dir + " is writable"
	return check
}
