package client

import (
	"context"
	"sync"
)

// CachedWrite is one previously-sent Write RPC's payload, kept around so
// it can be replayed if a later Commit reveals the server's verifier
// changed since the write was sent (spec.md §4.5).
type CachedWrite struct {
	Path   string
	Offset int64
	Data   []byte
}

// Cache holds a mount's buffered write history and the last verifier it
// observed from the server. It is owned by a single Handle; callers
// reach it through Handle.Write and Handle.Commit rather than directly.
type Cache struct {
	h *Handle

	mu     sync.Mutex
	writes []CachedWrite
	verf   int64
}

func newCache(h *Handle) *Cache {
	return &Cache{h: h}
}

func (c *Cache) setVerf(v int64) {
	c.mu.Lock()
	c.verf = v
	c.mu.Unlock()
}

// Write sends data to the server and, once durably accepted, appends a
// copy to the cache so it can be replayed later if Commit detects a
// verifier change. The copy is trimmed to however many bytes the server
// actually reports writing.
func (h *Handle) Write(ctx context.Context, path string, offset int64, data []byte) (int64, error) {
	n, err := h.writeDirect(ctx, CachedWrite{Path: path, Offset: offset, Data: data})
	if err != nil {
		return n, err
	}

	written := data
	if n >= 0 && int64(len(data)) != n {
		if n > int64(len(data)) {
			n = int64(len(data))
		}
		written = data[:n]
	}

	c := h.cache
	c.mu.Lock()
	c.writes = append(c.writes, CachedWrite{Path: path, Offset: offset, Data: append([]byte(nil), written...)})
	count := len(c.writes)
	c.mu.Unlock()
	h.metrics.SetCacheSize(count)

	return n, nil
}

// Commit asks the server for its current verifier. If it differs from
// the one in force when the cached writes were sent, the server has
// restarted since, so every cached write is resent and the server is
// asked to commit again, repeating until two consecutive commits report
// the same verifier (spec.md §4.5) — a replay can itself race a second
// restart, so one retry is not enough to guarantee the writes landed
// after the server settled. The cache's lock is held only to snapshot
// and later to clear it; the replay itself runs unlocked, matching
// spec.md §5's concurrency note that a commit must not block other
// operations on the same mount for the duration of a potentially-large
// replay.
func (h *Handle) Commit(ctx context.Context) error {
	c := h.cache

	c.mu.Lock()
	snapshot := append([]CachedWrite(nil), c.writes...)
	lastKnown := c.verf
	c.mu.Unlock()

	verf, err := h.commitRPC(ctx, lastKnown)
	if err != nil {
		return err
	}

	for verf != lastKnown {
		h.metrics.IncVerfMismatch()
		for _, w := range snapshot {
			if _, err := h.writeDirect(ctx, w); err != nil {
				return err
			}
		}
		h.metrics.IncReplay()

		lastKnown = verf
		verf, err = h.commitRPC(ctx, lastKnown)
		if err != nil {
			return err
		}
	}

	c.mu.Lock()
	if len(c.writes) >= len(snapshot) {
		c.writes = append([]CachedWrite(nil), c.writes[len(snapshot):]...)
	}
	c.verf = verf
	c.mu.Unlock()
	h.metrics.SetCacheSize(len(c.writes))

	return nil
}
