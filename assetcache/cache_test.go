package assetcache

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

// switchOrigin serves from a MapFS that tests can edit, or fails outright.
type switchOrigin struct {
	mu    sync.Mutex
	files fstest.MapFS
	down  bool
	calls int
}

func (o *switchOrigin) Get(ctx context.Context, p string) (*Response, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	if o.down {
		return nil, errors.New("origin offline")
	}
	return NewFSOrigin(o.files).Get(ctx, p)
}

func (o *switchOrigin) set(name, body string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.files[name] = &fstest.MapFile{Data: []byte(body)}
}

func (o *switchOrigin) setDown(down bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.down = down
}

func newOrigin() *switchOrigin {
	return &switchOrigin{files: fstest.MapFS{
		"index.html":         {Data: []byte("<html>v1</html>")},
		"pecking-order.wasm": {Data: []byte("\x00asm")},
	}}
}

func testManifest(strategy Strategy) Manifest {
	return Manifest{
		Version:  "test-v1",
		Strategy: strategy,
		Assets: []Asset{
			{Path: "/"},
			{Path: "/pecking-order.wasm"},
			{Path: "/audio/owl.mp3", Optional: true},
		},
	}
}

func quietLogger() logrus.FieldLogger {
	l, _ := logtest.NewNullLogger()
	return l
}

func newTestCache(t *testing.T, m Manifest, o Origin, opts ...Option) *Cache {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	c, err := New(m, o, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestDefaultManifest(t *testing.T) {
	m, err := DefaultManifest()
	if err != nil {
		t.Fatalf("DefaultManifest: %v", err)
	}
	if m.Version == "" || m.Strategy != StaleWhileRevalidate {
		t.Fatalf("manifest = %+v", m)
	}
	optional := 0
	for _, a := range m.Assets {
		if a.Optional {
			optional++
		}
	}
	if optional != 9 {
		t.Fatalf("optional audio assets = %d, want 9", optional)
	}
}

func TestParseManifestRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no version", "assets:\n  - path: /\n"},
		{"bad strategy", "version: v\nstrategy: network-only\n"},
		{"relative path", "version: v\nassets:\n  - path: index.html\n"},
		{"duplicate", "version: v\nassets:\n  - path: /\n  - path: /\n"},
		{"not yaml", "version: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseManifest([]byte(tt.yaml)); !errors.Is(err, ErrInvalidManifest) {
				t.Fatalf("err = %v, want ErrInvalidManifest", err)
			}
		})
	}
}

func TestParseManifestDefaultsToCacheFirst(t *testing.T) {
	m, err := ParseManifest([]byte("version: v\n"))
	if err != nil {
		t.Fatal(err)
	}
	if m.Strategy != CacheFirst {
		t.Fatalf("strategy = %q", m.Strategy)
	}
}

func TestInstallSkipsOptionalAssets(t *testing.T) {
	c := newTestCache(t, testManifest(CacheFirst), newOrigin())
	if err := c.Install(context.Background()); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if !c.Installed() {
		t.Fatal("not marked installed")
	}
	if n := c.Storage().size("test-v1"); n != 2 {
		t.Fatalf("stored %d assets, want 2", n)
	}
	if got := testutil.ToFloat64(c.Metrics().Installed); got != 2 {
		t.Fatalf("installed gauge = %v", got)
	}
}

func TestInstallIsAllOrNothing(t *testing.T) {
	o := newOrigin()
	delete(o.files, "pecking-order.wasm")
	c := newTestCache(t, testManifest(CacheFirst), o)

	if err := c.Install(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Install err = %v, want ErrNotFound", err)
	}
	if c.Installed() {
		t.Fatal("marked installed after failure")
	}
	if len(c.Storage().Versions()) != 0 {
		t.Fatalf("partial install stored: %v", c.Storage().Versions())
	}
}

func TestActivateDropsOldVersions(t *testing.T) {
	storage := NewStorage()
	o := newOrigin()

	old := newTestCache(t, testManifest(CacheFirst), o, WithStorage(storage))
	if err := old.Install(context.Background()); err != nil {
		t.Fatal(err)
	}

	m := testManifest(CacheFirst)
	m.Version = "test-v2"
	next := newTestCache(t, m, o, WithStorage(storage))
	if err := next.Install(context.Background()); err != nil {
		t.Fatal(err)
	}
	if v := storage.Versions(); len(v) != 2 {
		t.Fatalf("versions before activate = %v", v)
	}

	deleted := next.Activate()
	if len(deleted) != 1 || deleted[0] != "test-v1" {
		t.Fatalf("deleted = %v", deleted)
	}
	if v := storage.Versions(); len(v) != 1 || v[0] != "test-v2" {
		t.Fatalf("versions after activate = %v", v)
	}
}

func TestFetchIgnoresForeignRequests(t *testing.T) {
	c := newTestCache(t, testManifest(CacheFirst), newOrigin())
	tests := []Request{
		{Method: http.MethodPost, Path: "/", SameOrigin: true},
		{Method: http.MethodGet, Path: "/", SameOrigin: false},
	}
	for _, req := range tests {
		if _, err := c.Fetch(context.Background(), req); !errors.Is(err, ErrNotHandled) {
			t.Fatalf("Fetch(%+v) err = %v, want ErrNotHandled", req, err)
		}
	}
}

func TestCacheFirst(t *testing.T) {
	o := newOrigin()
	c := newTestCache(t, testManifest(CacheFirst), o)
	if err := c.Install(context.Background()); err != nil {
		t.Fatal(err)
	}
	get := Request{Method: http.MethodGet, Path: "/", SameOrigin: true}

	o.set("index.html", "<html>v2</html>")
	resp, err := c.Fetch(context.Background(), get)
	if err != nil {
		t.Fatal(err)
	}
	if string(resp.Body) != "<html>v1</html>" {
		t.Fatalf("cache-first served %q, want the cached copy", resp.Body)
	}

	// A miss goes to the origin and is stored for next time.
	o.set("extra.txt", "hello")
	extra := Request{Method: http.MethodGet, Path: "/extra.txt", SameOrigin: true}
	if _, err := c.Fetch(context.Background(), extra); err != nil {
		t.Fatal(err)
	}
	o.setDown(true)
	resp, err = c.Fetch(context.Background(), extra)
	if err != nil || string(resp.Body) != "hello" {
		t.Fatalf("offline fetch of stored miss = %v, %v", resp, err)
	}

	// Offline and never seen: the origin error comes back.
	if _, err := c.Fetch(context.Background(), Request{Method: http.MethodGet, Path: "/nope", SameOrigin: true}); err == nil {
		t.Fatal("expected error for uncached path while offline")
	}

	if got := testutil.ToFloat64(c.Metrics().Hits); got != 2 {
		t.Fatalf("hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.Metrics().Misses); got != 2 {
		t.Fatalf("misses = %v, want 2", got)
	}
}

func TestStaleWhileRevalidate(t *testing.T) {
	o := newOrigin()
	c := newTestCache(t, testManifest(StaleWhileRevalidate), o)
	if err := c.Install(context.Background()); err != nil {
		t.Fatal(err)
	}
	get := Request{Method: http.MethodGet, Path: "/", SameOrigin: true}

	o.set("index.html", "<html>v2</html>")
	resp, err := c.Fetch(context.Background(), get)
	if err != nil {
		t.Fatal(err)
	}
	if string(resp.Body) != "<html>v1</html>" {
		t.Fatalf("first fetch served %q, want stale copy", resp.Body)
	}
	c.Wait()

	resp, err = c.Fetch(context.Background(), get)
	if err != nil {
		t.Fatal(err)
	}
	if string(resp.Body) != "<html>v2</html>" {
		t.Fatalf("second fetch served %q, want refreshed copy", resp.Body)
	}
	c.Wait()
	if got := testutil.ToFloat64(c.Metrics().Revalidations); got != 2 {
		t.Fatalf("revalidations = %v, want 2", got)
	}

	// A failing refresh keeps the stale entry.
	o.setDown(true)
	c.Fetch(context.Background(), get)
	c.Wait()
	resp, err = c.Fetch(context.Background(), get)
	if err != nil || string(resp.Body) != "<html>v2</html>" {
		t.Fatalf("after failed refresh got %v, %v", resp, err)
	}
}

func TestNoRevalidationAfterClose(t *testing.T) {
	o := newOrigin()
	c := newTestCache(t, testManifest(StaleWhileRevalidate), o)
	if err := c.Install(context.Background()); err != nil {
		t.Fatal(err)
	}
	get := Request{Method: http.MethodGet, Path: "/", SameOrigin: true}

	// Fetches racing Close must either finish their refresh before Close
	// returns or not start one at all.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Fetch(context.Background(), get)
		}()
	}
	c.Close()
	wg.Wait()

	o.mu.Lock()
	before := o.calls
	o.mu.Unlock()

	resp, err := c.Fetch(context.Background(), get)
	if err != nil || string(resp.Body) != "<html>v1</html>" {
		t.Fatalf("fetch after close got %v, %v", resp, err)
	}
	c.Wait()

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.calls != before {
		t.Fatalf("origin calls went from %d to %d after close", before, o.calls)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.inflight) != 0 {
		t.Fatalf("inflight = %v after close", c.inflight)
	}
}

func TestServeHTTP(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := newTestCache(t, testManifest(CacheFirst), newOrigin(), WithRegisterer(reg))
	if err := c.Install(context.Background()); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(c)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/pecking-order.wasm")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if res.StatusCode != http.StatusOK || string(body) != "\x00asm" {
		t.Fatalf("status %d body %q", res.StatusCode, body)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/wasm" {
		t.Fatalf("content type = %q", ct)
	}
	if res.Header.Get("X-Cache") != "test-v1" {
		t.Fatalf("X-Cache = %q", res.Header.Get("X-Cache"))
	}

	res, err = http.Get(srv.URL + "/missing.png")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("missing asset status = %d", res.StatusCode)
	}

	res, err = http.Post(srv.URL+"/", "text/plain", nil)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d", res.StatusCode)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	if len(families) == 0 {
		t.Fatal("no metrics registered")
	}
}
