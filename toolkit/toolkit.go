// Package toolkit bundles the Camb AI tools behind one constructor so an
// agent integration pulls in a single dependency. The toolkit owns the
// shared plumbing: one API client, one artifact store, the optional cache,
// and the polling budget every asynchronous tool runs under.
package toolkit

import (
	"errors"
	"os"
	"time"

	"github.com/EasterCompany/dex-camb-tools/cache"
	"github.com/EasterCompany/dex-camb-tools/camb"
	"github.com/EasterCompany/dex-camb-tools/config"
	"github.com/EasterCompany/dex-camb-tools/store"
	"github.com/EasterCompany/dex-camb-tools/task"
	"github.com/EasterCompany/dex-camb-tools/tools"
)

// Include selects which tools the toolkit exposes.
type Include struct {
	TTS             bool
	TranslatedTTS   bool
	Translation     bool
	Transcription   bool
	VoiceList       bool
	VoiceClone      bool
	TextToSound     bool
	AudioSeparation bool
}

// IncludeAll enables every tool.
func IncludeAll() Include {
	return Include{
		TTS:             true,
		TranslatedTTS:   true,
		Translation:     true,
		Transcription:   true,
		VoiceList:       true,
		VoiceClone:      true,
		TextToSound:     true,
		AudioSeparation: true,
	}
}

// Options configures a Toolkit. The zero value plus an API key in the
// environment is a working setup.
type Options struct {
	// APIKey authenticates against the provider. Empty falls back to the
	// CAMB_API_KEY environment variable.
	APIKey string
	// BaseURL overrides the provider endpoint, mainly for tests.
	BaseURL string
	// Timeout bounds each HTTP request.
	Timeout time.Duration
	// MaxPollAttempts and PollInterval set the budget for waiting on
	// asynchronous tasks. Zero values use the poller defaults.
	MaxPollAttempts int
	PollInterval    time.Duration
	// ArtifactDir receives produced audio files. Empty means the system
	// temp dir.
	ArtifactDir string
	// Cache mirrors artifacts and the voice catalog. Nil disables caching.
	Cache cache.Cache
	// CacheTTL bounds cached payload lifetime. Zero means no expiry.
	CacheTTL time.Duration
	// Include picks the bundled tools. Nil includes all of them.
	Include *Include
}

// FromConfig maps a loaded configuration onto toolkit options. The cache is
// wired separately since its lifecycle outlives a single toolkit.
func FromConfig(cfg *config.Config) Options {
	return Options{
		APIKey:          cfg.APIKey,
		BaseURL:         cfg.BaseURL,
		Timeout:         cfg.Timeout(),
		MaxPollAttempts: cfg.MaxPollAttempts,
		PollInterval:    cfg.PollInterval(),
		ArtifactDir:     cfg.ArtifactDir,
		CacheTTL:        time.Duration(cfg.Redis.TTLHours) * time.Hour,
	}
}

// Toolkit is the assembled tool bundle.
type Toolkit struct {
	tools  []tools.Tool
	client *camb.Client
	cache  cache.Cache
}

// New assembles the toolkit. It fails fast when no API key can be resolved
// rather than letting the first tool call discover the problem.
func New(opts Options) (*Toolkit, error) {
	key := opts.APIKey
	if key == "" {
		key = os.Getenv(config.EnvAPIKey)
	}
	if key == "" {
		return nil, errors.New("CAMB AI API key is required: set Options.APIKey or the CAMB_API_KEY environment variable")
	}

	client, err := camb.New(camb.Options{APIKey: key, BaseURL: opts.BaseURL, Timeout: opts.Timeout})
	if err != nil {
		return nil, err
	}
	fileStore, err := store.NewFileStore(opts.ArtifactDir)
	if err != nil {
		return nil, err
	}

	var artifacts store.Store = fileStore
	if opts.Cache != nil {
		artifacts = &mirrorStore{inner: fileStore, cache: opts.Cache, ttl: opts.CacheTTL}
	}

	deps := tools.Deps{
		Client:   client,
		Store:    artifacts,
		Cache:    opts.Cache,
		CacheTTL: opts.CacheTTL,
		Poller: task.Poller{
			MaxAttempts: opts.MaxPollAttempts,
			Interval:    opts.PollInterval,
		},
	}

	include := IncludeAll()
	if opts.Include != nil {
		include = *opts.Include
	}

	k := &Toolkit{client: client, cache: opts.Cache}
	k.add(include.TTS, tools.NewTTSTool(deps))
	k.add(include.TranslatedTTS, tools.NewTranslatedTTSTool(deps))
	k.add(include.Translation, tools.NewTranslationTool(deps))
	k.add(include.Transcription, tools.NewTranscriptionTool(deps))
	k.add(include.VoiceList, tools.NewVoiceListTool(deps))
	k.add(include.VoiceClone, tools.NewVoiceCloneTool(deps))
	k.add(include.TextToSound, tools.NewTextToSoundTool(deps))
	k.add(include.AudioSeparation, tools.NewAudioSeparationTool(deps))
	return k, nil
}

func (k *Toolkit) add(enabled bool, t tools.Tool) {
	if !enabled {
		return
	}
	k.tools = append(k.tools, &loggedTool{Tool: t, cache: k.cache})
}

// Tools returns the enabled tools in registration order.
func (k *Toolkit) Tools() []tools.Tool {
	out := make([]tools.Tool, len(k.tools))
	copy(out, k.tools)
	return out
}

// Tool looks one tool up by name.
func (k *Toolkit) Tool(name string) (tools.Tool, bool) {
	for _, t := range k.tools {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// Client exposes the underlying API client for health probes.
func (k *Toolkit) Client() *camb.Client {
	return k.client
}
