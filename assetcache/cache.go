// Package assetcache keeps an offline copy of the web build's assets: a
// versioned precache that is installed in one step, old versions dropped on
// activate, and same-origin GETs served cache-first or
// stale-while-revalidate with the origin as fallback.
package assetcache

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var ErrNotHandled = errors.New("assetcache: request not handled")

const revalidateTimeout = 30 * time.Second

// Request is what the cache needs to know about an incoming fetch.
type Request struct {
	Method     string
	Path       string
	SameOrigin bool
}

type Cache struct {
	manifest Manifest
	storage  *Storage
	origin   Origin
	log      logrus.FieldLogger
	metrics  *Metrics

	mu        sync.Mutex
	inflight  map[string]bool // paths being revalidated
	installed bool
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
}

type Option func(*Cache) error

// WithLogger replaces the default logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Cache) error {
		c.log = l
		return nil
	}
}

// WithStorage shares bucket storage with other caches.
func WithStorage(s *Storage) Option {
	return func(c *Cache) error {
		c.storage = s
		return nil
	}
}

// WithRegisterer registers the cache metrics.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *Cache) error {
		return c.metrics.register(r)
	}
}

func New(m Manifest, origin Origin, opts ...Option) (*Cache, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Cache{
		manifest: m,
		storage:  NewStorage(),
		origin:   origin,
		log:      logrus.StandardLogger(),
		metrics:  newMetrics(m.Version),
		inflight: make(map[string]bool),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			cancel()
			return nil, err
		}
	}
	return c, nil
}

func (c *Cache) Version() string    { return c.manifest.Version }
func (c *Cache) Strategy() Strategy { return c.manifest.Strategy }
func (c *Cache) Metrics() *Metrics  { return c.metrics }
func (c *Cache) Storage() *Storage  { return c.storage }
func (c *Cache) Manifest() Manifest { return c.manifest }

// Size reports how many assets the current version holds and their bytes.
func (c *Cache) Size() (int, uint64) {
	return c.storage.size(c.manifest.Version), c.storage.bytes(c.manifest.Version)
}

// Installed reports whether the precache completed.
func (c *Cache) Installed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.installed
}

// Install fetches every manifest asset. A failed required asset aborts the
// whole install and nothing is stored; optional assets are skipped.
func (c *Cache) Install(ctx context.Context) error {
	started := time.Now()
	entries := make(map[string]*Response, len(c.manifest.Assets))

	for _, a := range c.manifest.Assets {
		resp, err := c.origin.Get(ctx, a.Path)
		if err != nil {
			c.metrics.OriginErrors.Inc()
			if a.Optional {
				c.log.WithError(err).Warnf("Skipping optional asset %s", a.Path)
				continue
			}
			return fmt.Errorf("install %s: %w", a.Path, err)
		}
		entries[a.Path] = resp
	}

	c.storage.replace(c.manifest.Version, entries)
	c.metrics.Installed.Set(float64(len(entries)))

	c.mu.Lock()
	c.installed = true
	c.mu.Unlock()

	c.log.Infof("Installed %s: %d assets (took: %s)", c.manifest.Version, len(entries), time.Since(started).Round(time.Millisecond))
	return nil
}

// Activate deletes every bucket left behind by other versions.
func (c *Cache) Activate() []string {
	deleted := c.storage.prune(c.manifest.Version)
	for _, v := range deleted {
		c.log.Infof("Deleted old cache %s", v)
	}
	return deleted
}

// Fetch serves one request. Only same-origin GETs are handled.
func (c *Cache) Fetch(ctx context.Context, req Request) (*Response, error) {
	if req.Method != http.MethodGet || !req.SameOrigin {
		return nil, ErrNotHandled
	}

	cached, hit := c.storage.match(c.manifest.Version, req.Path)
	if hit {
		c.metrics.Hits.Inc()
		if c.manifest.Strategy == StaleWhileRevalidate {
			c.revalidate(req.Path)
		}
		return cached, nil
	}

	c.metrics.Misses.Inc()
	resp, err := c.origin.Get(ctx, req.Path)
	if err != nil {
		c.metrics.OriginErrors.Inc()
		return nil, err
	}
	c.storage.put(c.manifest.Version, req.Path, resp)
	return resp, nil
}

// revalidate refreshes a path in the background, at most once at a time.
func (c *Cache) revalidate(p string) {
	c.mu.Lock()
	if c.inflight[p] || c.ctx.Err() != nil {
		c.mu.Unlock()
		return
	}
	c.inflight[p] = true
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		defer func() {
			c.mu.Lock()
			delete(c.inflight, p)
			c.mu.Unlock()
		}()

		ctx, cancel := context.WithTimeout(c.ctx, revalidateTimeout)
		defer cancel()

		resp, err := c.origin.Get(ctx, p)
		if err != nil {
			c.metrics.OriginErrors.Inc()
			c.log.WithError(err).Debugf("Revalidating %s failed, keeping stale copy", p)
			return
		}
		c.storage.put(c.manifest.Version, p, resp)
		c.metrics.Revalidations.Inc()
	}()
}

// Wait blocks until background revalidations finish.
func (c *Cache) Wait() {
	c.wg.Wait()
}

// Close stops new revalidations and waits for running ones.
func (c *Cache) Close() {
	c.mu.Lock()
	c.cancel()
	c.mu.Unlock()
	c.wg.Wait()
}

// ServeHTTP fronts Fetch. Requests the cache does not handle go straight to
// the origin.
func (c *Cache) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := Request{Method: r.Method, Path: r.URL.Path, SameOrigin: sameOrigin(r)}

	resp, err := c.Fetch(r.Context(), req)
	if errors.Is(err, ErrNotHandled) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		resp, err = c.origin.Get(r.Context(), r.URL.Path)
	}
	if errors.Is(err, ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		c.log.WithError(err).Errorf("Could not serve %s", r.URL.Path)
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", resp.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(resp.Body)))
	w.Header().Set("X-Cache", c.manifest.Version)
	if !resp.ModTime.IsZero() {
		w.Header().Set("Last-Modified", resp.ModTime.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(resp.Body)
	}
}

// sameOrigin treats requests without an Origin header as same-origin.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}
