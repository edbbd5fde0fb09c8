// Package imagecache implements the speaker photo cache: HTTP fetch,
// normalisation to an exact pixel size, and a disk cache with a
// SQLite manifest.
//
// Normalisation matters because Sessionize photos arrive with wildly
// inconsistent DPI metadata and alpha channels; spreadsheet backends
// size pictures from that metadata, not pixel dimensions. Every
// cached image is therefore decoded, composited over white, resampled
// to the exact target, and re-encoded as plain JPEG.
//
// Prefetch runs a bounded worker pool over the distinct uncached
// URLs, throttled by a token bucket, so the layout engine's
// per-record Resolve calls are cache hits.
package imagecache
