package driven

import (
	"context"

	"github.com/pybay/runsheet-cli/internal/core/domain"
)

// ImageCache resolves speaker photo URLs to cache-stable local files,
// normalised to an exact pixel size. Implementations may fetch over
// the network; callers treat Resolve as synchronous and warm the
// cache with Prefetch before layout so per-record calls are hits.
type ImageCache interface {
	// Resolve returns the local path of the normalised image for url
	// at size, fetching and caching it if needed. A failed fetch or
	// undecodable image returns an error wrapping
	// domain.ErrImageUnavailable; callers degrade that one record to
	// a text fallback.
	Resolve(ctx context.Context, url string, size domain.ImageSize) (string, error)

	// Prefetch warms the cache for every (url, size) pairing.
	// Best-effort: per-URL failures are remembered and reported by
	// later Resolve calls, never returned here.
	Prefetch(ctx context.Context, urls []string, sizes []domain.ImageSize)

	// Stats reports resolved and failed fetch counts for the run.
	Stats() (resolved, failed int)
}
