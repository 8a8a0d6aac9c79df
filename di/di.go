// Package di provides a dependency injection container for the application.
package di

import (
	"errors"
	"fmt"

	"github.com/EasterCompany/dex-camb-tools/cache"
	"github.com/EasterCompany/dex-camb-tools/config"
	"github.com/EasterCompany/dex-camb-tools/log"
	"github.com/EasterCompany/dex-camb-tools/toolkit"
	"github.com/EasterCompany/dex-camb-tools/worker"
)

// Container holds all the dependencies for the application.
type Container struct {
	Config  *config.Config
	Cache   cache.Cache
	Toolkit *toolkit.Toolkit
}

// NewContainer creates a new dependency injection container.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("fatal error loading config: %w", err)
	}

	// A disabled cache config yields (nil, nil). A configured but
	// unreachable Redis is logged and skipped; the toolkit runs without it.
	var c cache.Cache
	if db, err := cache.New(&cfg.Redis); err != nil {
		log.Error("failed to initialize cache", err)
	} else if db != nil {
		c = db
	}

	opts := toolkit.FromConfig(cfg)
	opts.Cache = c
	kit, err := toolkit.New(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize toolkit: %w", err)
	}

	return &Container{
		Config:  cfg,
		Cache:   c,
		Toolkit: kit,
	}, nil
}

// BatchPool builds a worker pool over the toolkit's translation and TTS
// tools. It fails when either tool was excluded from the toolkit.
func (c *Container) BatchPool(maxWorkers, queueSize int) (*worker.Pool, error) {
	translate, ok := c.Toolkit.Tool("camb_translation")
	if !ok {
		return nil, errors.New("toolkit does not include the translation tool")
	}
	speak, ok := c.Toolkit.Tool("camb_tts")
	if !ok {
		return nil, errors.New("toolkit does not include the tts tool")
	}
	return worker.New(translate, speak, maxWorkers, queueSize), nil
}

// Close releases held resources. Safe to call on a container without a cache.
func (c *Container) Close() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Error("closing cache", err)
		}
	}
}
