package toolkit

import (
	"context"
	"path/filepath"
	"time"

	"github.com/EasterCompany/dex-camb-tools/cache"
	"github.com/EasterCompany/dex-camb-tools/log"
	"github.com/EasterCompany/dex-camb-tools/store"
)

// mirrorStore copies every saved artifact into the cache, keyed by file
// name, so the bytes survive temp-dir cleanup between tool calls. Mirroring
// is best effort; a cache failure never fails the save.
type mirrorStore struct {
	inner store.Store
	cache cache.Cache
	ttl   time.Duration
}

func (m *mirrorStore) Save(data []byte, pattern string) (string, error) {
	path, err := m.inner.Save(data, pattern)
	if err != nil {
		return "", err
	}
	key := filepath.Base(path)
	if err := m.cache.SaveAudio(context.Background(), key, data, m.ttl); err != nil {
		log.Error("mirroring artifact "+key, err)
	}
	return path, nil
}
