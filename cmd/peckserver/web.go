package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/automoto/pecking-order/assetcache"
	"github.com/dustin/go-humanize"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
)

func newLogger(cfg *Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func securityHeaders(w http.ResponseWriter) {
	w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
	w.Header().Set("Cross-Origin-Resource-Policy", "same-site")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("X-Content-Type-Options", "nosniff")
}

func loadManifest(cfg *Config) (assetcache.Manifest, error) {
	if cfg.manifest == "" {
		return assetcache.DefaultManifest()
	}
	data, err := os.ReadFile(cfg.manifest)
	if err != nil {
		return assetcache.Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	return assetcache.ParseManifest(data)
}

// newRouter wires the fixed routes; everything else falls through to the
// asset cache.
func newRouter(cfg *Config, cache *assetcache.Cache, reg *prometheus.Registry, logger logrus.FieldLogger) *httprouter.Router {
	mux := httprouter.New()

	mux.PanicHandler = func(w http.ResponseWriter, r *http.Request, i any) {
		logger.Errorf("Panic serving %s: %v", r.URL.Path, i)
		securityHeaders(w)
		http.Error(w, "An error has occurred. Please try again.", http.StatusInternalServerError)
	}

	mux.GET("/healthz", serveHealthCheck())
	mux.GET("/version", serveVersion())
	mux.GET("/qr.png", serveQR(cfg, logger))
	if cfg.metrics {
		mux.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	mux.NotFound = serveAssets(cache, logger)
	return mux
}

func serveAssets(cache *assetcache.Cache, logger logrus.FieldLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		securityHeaders(w)

		rec := &countingWriter{ResponseWriter: w}
		cache.ServeHTTP(rec, r)

		logger.Debugf("SERVE: %s (%s) to %s in %s",
			r.URL.Path,
			humanize.Bytes(uint64(rec.written)),
			r.RemoteAddr,
			time.Since(startTime).Round(time.Microsecond),
		)
	})
}

type countingWriter struct {
	http.ResponseWriter
	written int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.ResponseWriter.Write(p)
	c.written += n
	return n, err
}

func serveHealthCheck() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(w)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Ok\n"))
	}
}

func serveVersion() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(w)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("peckserver v" + releaseVersion + "\n"))
	}
}

const qrSize = 256

func serveQR(cfg *Config, logger logrus.FieldLogger) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		png, err := qrcode.Encode(cfg.joinURL(), qrcode.Medium, qrSize)
		if err != nil {
			logger.WithError(err).Error("Could not encode QR code")
			http.Error(w, "could not generate QR code", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		securityHeaders(w)
		_, _ = w.Write(png)
	}
}

// printJoinCode shows the join URL as a QR code in the terminal.
func printJoinCode(cfg *Config) error {
	q, err := qrcode.New(cfg.joinURL(), qrcode.Medium)
	if err != nil {
		return err
	}
	fmt.Println(q.ToSmallString(false))
	fmt.Printf("Join at %s\n", cfg.joinURL())
	return nil
}

func Serve(ctx context.Context, cfg *Config) error {
	logger := newLogger(cfg)
	logger.Infof("START: peckserver v%s", releaseVersion)

	manifest, err := loadManifest(cfg)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	cache, err := assetcache.New(manifest, assetcache.NewDirOrigin(cfg.root),
		assetcache.WithLogger(logger),
		assetcache.WithRegisterer(reg),
	)
	if err != nil {
		return err
	}
	defer cache.Close()

	if err := cache.Install(ctx); err != nil {
		logger.WithError(err).Warn("Install failed, serving straight from disk")
	} else {
		cache.Activate()
		n, size := cache.Size()
		logger.Infof("Precached %d assets (%s) from %s", n, humanize.Bytes(size), cfg.root)
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.bind, strconv.Itoa(cfg.port)),
		Handler:           newRouter(cfg, cache, reg, logger),
		IdleTimeout:       10 * time.Minute,
		ReadTimeout:       cfg.timeout,
		ReadHeaderTimeout: cfg.timeout,
		WriteTimeout:      cfg.timeout,
	}

	if err := printJoinCode(cfg); err != nil {
		logger.WithError(err).Warn("Could not print join code")
	}

	errs := make(chan error, 1)
	go func() {
		logger.Infof("SERVE: Listening on http://%s/", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errs:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
