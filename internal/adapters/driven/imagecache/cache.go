package imagecache

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	_ "image/gif" // register decoders for the formats Sessionize serves
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/time/rate"

	"github.com/pybay/runsheet-cli/internal/core/domain"
	"github.com/pybay/runsheet-cli/internal/core/ports/driven"
	"github.com/pybay/runsheet-cli/internal/logger"
)

// Ensure Cache implements the interface.
var _ driven.ImageCache = (*Cache)(nil)

// jpegQuality matches the original cache contents, so regenerating a
// conference reuses existing files byte-for-byte.
const jpegQuality = 85

// failureMemory is how long a recorded fetch failure suppresses
// re-fetching the same URL across runs.
const failureMemory = 24 * time.Hour

// safeName restricts cache filenames to characters every filesystem
// accepts.
var safeName = regexp.MustCompile(`^[\w\-.]+$`)

type key struct {
	url  string
	size domain.ImageSize
}

// Cache is the disk-backed speaker photo cache.
type Cache struct {
	root     string
	client   *http.Client
	limiter  *rate.Limiter
	workers  int
	manifest *Manifest

	mu       sync.Mutex
	failures map[key]error
	resolved int
	failed   int
}

// New creates a cache rooted at dir. The directory and its SQLite
// manifest are created on first use.
func New(dir string, settings domain.Settings) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".runsheet", "images_cache")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	manifest, err := OpenManifest(filepath.Join(dir, "manifest.db"))
	if err != nil {
		return nil, fmt.Errorf("opening cache manifest: %w", err)
	}

	workers := settings.FetchWorkers
	if workers < 1 {
		workers = 1
	}
	return &Cache{
		root:     dir,
		client:   &http.Client{Timeout: settings.FetchTimeout},
		limiter:  rate.NewLimiter(rate.Limit(settings.RequestsPerSecond), workers),
		workers:  workers,
		manifest: manifest,
		failures: make(map[key]error),
	}, nil
}

// Close releases the manifest.
func (c *Cache) Close() error {
	return c.manifest.Close()
}

// Resolve implements driven.ImageCache.
func (c *Cache) Resolve(ctx context.Context, rawURL string, size domain.ImageSize) (string, error) {
	k := key{url: rawURL, size: size}

	c.mu.Lock()
	if err, ok := c.failures[k]; ok {
		c.mu.Unlock()
		return "", err
	}
	c.mu.Unlock()

	path, err := c.cachePath(rawURL, size)
	if err != nil {
		return "", c.recordFailure(k, "", err)
	}

	if _, statErr := os.Stat(path); statErr == nil {
		c.mu.Lock()
		c.resolved++
		c.mu.Unlock()
		return path, nil
	}

	// A recent recorded failure means the URL is known bad; skip the
	// network round trip this run.
	if status, _, at, ok := c.manifest.Lookup(rawURL, size); ok &&
		status == statusFailed && time.Since(at) < failureMemory {
		err := fmt.Errorf("%w: %s failed at %s", domain.ErrImageUnavailable, rawURL, at.Format(time.RFC3339))
		return "", c.recordFailure(k, path, err)
	}

	if err := c.fetch(ctx, rawURL, size, path); err != nil {
		return "", c.recordFailure(k, path, err)
	}

	c.mu.Lock()
	c.resolved++
	c.mu.Unlock()
	if err := c.manifest.Record(rawURL, size, path, statusCached); err != nil {
		logger.Debug("manifest write failed: %v", err)
	}
	return path, nil
}

// Stats implements driven.ImageCache.
func (c *Cache) Stats() (resolved, failed int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolved, c.failed
}

func (c *Cache) recordFailure(k key, path string, err error) error {
	if !strings.Contains(err.Error(), domain.ErrImageUnavailable.Error()) {
		err = fmt.Errorf("%w: %v", domain.ErrImageUnavailable, err)
	}
	c.mu.Lock()
	if _, seen := c.failures[k]; !seen {
		c.failed++
	}
	c.failures[k] = err
	c.mu.Unlock()
	if mErr := c.manifest.Record(k.url, k.size, path, statusFailed); mErr != nil {
		logger.Debug("manifest write failed: %v", mErr)
	}
	return err
}

// cachePath derives the cache file for a URL and size. The filename
// comes from the URL path's base name with a size suffix; normalised
// images are always JPEG regardless of source format.
func (c *Cache) cachePath(rawURL string, size domain.ImageSize) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("unparseable URL %q: %w", rawURL, err)
	}
	name := filepath.Base(u.Path)
	if !safeName.MatchString(name) {
		return "", fmt.Errorf("unsafe image filename in URL %q", rawURL)
	}
	ext := filepath.Ext(name)
	if ext == "" {
		return "", fmt.Errorf("no file extension in URL %q", rawURL)
	}
	stem := strings.TrimSuffix(name, ext)
	return filepath.Join(c.root, fmt.Sprintf("%s_%dx%d.jpg", stem, size.Width, size.Height)), nil
}

// fetch downloads, normalises and atomically installs one image.
func (c *Cache) fetch(ctx context.Context, rawURL string, size domain.ImageSize, path string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %s", rawURL, resp.Status)
	}

	src, _, err := image.Decode(resp.Body)
	if err != nil {
		return fmt.Errorf("decode %s: %w", rawURL, err)
	}

	normalised := normalise(src, size)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, normalised, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encode %s: %w", rawURL, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	logger.Debug("cached %s -> %s", rawURL, filepath.Base(path))
	return nil
}

// normalise composites the image over a white background (stripping
// any alpha channel) and resamples it to exactly the target size.
func normalise(src image.Image, size domain.ImageSize) image.Image {
	flat := image.NewRGBA(src.Bounds())
	draw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), src, src.Bounds().Min, draw.Over)

	if flat.Bounds().Dx() == size.Width && flat.Bounds().Dy() == size.Height {
		return flat
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), flat, flat.Bounds(), xdraw.Src, nil)
	return dst
}
