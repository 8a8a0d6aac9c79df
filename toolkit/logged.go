package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/EasterCompany/dex-camb-tools/cache"
	"github.com/EasterCompany/dex-camb-tools/log"
	"github.com/EasterCompany/dex-camb-tools/tools"
)

// loggedTool decorates a tool with per-invocation logging and, when a cache
// is configured, an entry in the bounded invocation history.
type loggedTool struct {
	tools.Tool
	cache cache.Cache
}

func (l *loggedTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	id := uuid.NewString()
	start := time.Now()
	log.Debug("tool %s invocation %s starting", l.Name(), id)

	out, err := l.Tool.Call(ctx, args)
	elapsed := time.Since(start)
	if err != nil {
		log.Error(fmt.Sprintf("tool %s invocation %s (%s)", l.Name(), id, elapsed), err)
	} else {
		log.Debug("tool %s invocation %s finished in %s", l.Name(), id, elapsed)
	}

	if l.cache != nil {
		rec := cache.InvocationRecord{
			ID:       id,
			Tool:     l.Name(),
			Duration: elapsed.String(),
			At:       start,
		}
		if err != nil {
			rec.Error = err.Error()
		}
		if cerr := l.cache.RecordInvocation(ctx, rec); cerr != nil {
			log.Error("recording invocation history", cerr)
		}
	}
	return out, err
}
