package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/EasterCompany/dex-camb-tools/config"
)

// ANSI color codes for formatted output
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
)

func main() {
	fmt.Printf("%s--- Camb Tools Config Verifier ---%s\n", ColorBlue, ColorReset)

	path, err := config.Path()
	if err != nil {
		fmt.Printf("%s[FATAL]%s Could not determine config path: %v\n", ColorRed, ColorReset, err)
		os.Exit(1)
	}
	fmt.Printf("\nVerifying %s'%s'%s...\n", ColorBlue, path, ColorReset)

	cfg, ok := decodeStrict(path)
	if ok {
		ok = verifyValues(cfg)
	}

	fmt.Println("\n--------------------------")
	if ok {
		fmt.Printf("%s✅ Configuration is usable.%s\n", ColorGreen, ColorReset)
		return
	}
	fmt.Printf("%s❌ Some issues were found in the configuration.%s\n", ColorRed, ColorReset)
	os.Exit(1)
}

// decodeStrict reads the file and decodes it against the real config type
// with unknown fields disallowed, so typos in key names surface instead of
// being silently ignored at load time.
func decodeStrict(path string) (*config.Config, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("  %s[FAIL]%s File not found or not readable: %v\n", ColorRed, ColorReset, err)
		fmt.Printf("  %s[HINT]%s Running any camb-tools command once creates it with defaults.\n", ColorYellow, ColorReset)
		return nil, false
	}
	fmt.Printf("  %s[OK]%s File exists and is readable.\n", ColorGreen, ColorReset)

	var cfg config.Config
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		fmt.Printf("  %s[FAIL]%s JSON is invalid or contains unrecognized keys: %v\n", ColorRed, ColorReset, err)
		return nil, false
	}
	fmt.Printf("  %s[OK]%s JSON is valid and every key is recognized.\n", ColorGreen, ColorReset)
	return &cfg, true
}

// verifyValues applies the semantic checks a plain decode cannot: value
// ranges, URL shape, and the redis enable/addr pairing. Zero values are only
// warnings, since load-time defaults and CAMB_* environment variables fill
// them in.
func verifyValues(cfg *config.Config) bool {
	ok := true

	if cfg.APIKey == "" {
		if os.Getenv(config.EnvAPIKey) != "" {
			fmt.Printf("  %s[OK]%s api_key is empty but %s is exported.\n", ColorGreen, ColorReset, config.EnvAPIKey)
		} else {
			fmt.Printf("  %s[WARN]%s api_key is empty and %s is not set; every tool call will fail.\n", ColorYellow, ColorReset, config.EnvAPIKey)
		}
	}

	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			fmt.Printf("  %s[FAIL]%s base_url %q is not an http(s) URL.\n", ColorRed, ColorReset, cfg.BaseURL)
			ok = false
		}
	}

	if cfg.TimeoutSeconds < 0 {
		fmt.Printf("  %s[FAIL]%s timeout_seconds must not be negative.\n", ColorRed, ColorReset)
		ok = false
	}
	if cfg.MaxPollAttempts < 0 {
		fmt.Printf("  %s[FAIL]%s max_poll_attempts must not be negative.\n", ColorRed, ColorReset)
		ok = false
	}
	if cfg.PollIntervalSeconds < 0 {
		fmt.Printf("  %s[FAIL]%s poll_interval_seconds must not be negative.\n", ColorRed, ColorReset)
		ok = false
	}
	if cfg.MaxPollAttempts > 0 && cfg.PollIntervalSeconds > 0 {
		budget := time.Duration(float64(cfg.MaxPollAttempts) * cfg.PollIntervalSeconds * float64(time.Second))
		fmt.Printf("  %s[OK]%s Tasks get %d poll attempts, up to %s of waiting.\n", ColorGreen, ColorReset, cfg.MaxPollAttempts, budget)
	}

	if cfg.ArtifactDir != "" {
		if info, err := os.Stat(cfg.ArtifactDir); err == nil && !info.IsDir() {
			fmt.Printf("  %s[FAIL]%s artifact_dir %q exists but is not a directory.\n", ColorRed, ColorReset, cfg.ArtifactDir)
			ok = false
		}
	}

	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		fmt.Printf("  %s[FAIL]%s redis.enabled is true but redis.addr is empty.\n", ColorRed, ColorReset)
		ok = false
	}
	if cfg.Redis.TTLHours < 0 {
		fmt.Printf("  %s[FAIL]%s redis.ttl_hours must not be negative.\n", ColorRed, ColorReset)
		ok = false
	}
	if !cfg.Redis.Enabled {
		fmt.Printf("  %s[OK]%s Cache is disabled; audio mirroring and history are off.\n", ColorGreen, ColorReset)
	}

	return ok
}
