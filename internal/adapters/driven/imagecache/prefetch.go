package imagecache

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/pybay/runsheet-cli/internal/core/domain"
	"github.com/pybay/runsheet-cli/internal/logger"
)

// Prefetch implements driven.ImageCache.
//
// It warms the cache for every (url, size) pairing using a bounded
// worker pool. Already-cached images are filtered out before any
// network traffic; failures are remembered and reported by later
// Resolve calls, never here.
func (c *Cache) Prefetch(ctx context.Context, urls []string, sizes []domain.ImageSize) {
	type job struct {
		url  string
		size domain.ImageSize
	}

	var pending []job
	for _, u := range urls {
		for _, s := range sizes {
			path, err := c.cachePath(u, s)
			if err != nil {
				// Resolve will report the same failure per record.
				continue
			}
			if _, statErr := os.Stat(path); statErr == nil {
				continue
			}
			pending = append(pending, job{url: u, size: s})
		}
	}

	if len(pending) == 0 {
		logger.Info("All %d speaker photos already cached", len(urls))
		return
	}

	logger.Info("Prefetching %d speaker photos (%d workers)", len(pending), c.workers)
	start := time.Now()

	jobs := make(chan job)
	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				// Per-photo failures degrade to text fallbacks at
				// layout time; prefetch only warms the cache.
				_, _ = c.Resolve(ctx, j.url, j.size)
			}
		}()
	}

	for _, j := range pending {
		if ctx.Err() != nil {
			break
		}
		jobs <- j
	}
	close(jobs)
	wg.Wait()

	resolved, failed := c.Stats()
	logger.Info("Photo prefetch done in %s: %d cached, %d failed",
		time.Since(start).Round(time.Millisecond), resolved, failed)
}
