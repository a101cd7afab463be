package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/topoviz/topoviz/pkg/cache"
	"github.com/topoviz/topoviz/pkg/discovery"
	"github.com/topoviz/topoviz/pkg/observability"
	"github.com/topoviz/topoviz/pkg/pipeline"
	"github.com/topoviz/topoviz/pkg/render/dot"
)

// serveArtifactTTL bounds cached SVG layouts between requests. Keys
// include the snapshot hash, so an edited snapshot misses immediately.
const serveArtifactTTL = time.Hour

// newServeCmd creates the serve command: a local preview server that
// re-reads the snapshot and re-runs the pass on every request.
func newServeCmd() *cobra.Command {
	var flags passFlags
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <snapshot>",
		Short: "Preview the communication graph in a browser",
		Long: `Serve the communication graph over HTTP. The snapshot file is
re-read on every request, so edits show up on reload.

Endpoints:
  GET /           HTML page embedding the graph
  GET /graph.dot  the DOT document
  GET /graph.svg  the rendered SVG`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, configFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			return runServe(cmd, args[0], addr, opts)
		},
	}

	addPassFlags(cmd, &flags)
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")

	return cmd
}

// runServe blocks until the context is cancelled or the listener fails.
func runServe(cmd *cobra.Command, snapshotPath, addr string, opts pipeline.Options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	c, err := openArtifactCache(cmd)
	if err != nil {
		printWarning("Artifact cache unavailable: %v", err)
		c = cache.NewNullCache()
	}
	defer c.Close()

	ps := &previewServer{
		logger: logger,
		path:   snapshotPath,
		opts:   opts,
		cache:  c,
	}

	r := chi.NewRouter()
	r.Use(hooksMiddleware)
	r.Get("/", ps.handleIndex)
	r.Get("/graph.dot", ps.handleDOT)
	r.Get("/graph.svg", ps.handleSVG)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	printInfo("Serving %s", snapshotPath)
	printDetail("Preview: http://%s/", addr)
	logger.Infof("Listening on %s", addr)

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// previewServer holds the per-server state for the preview endpoints.
type previewServer struct {
	logger *log.Logger
	path   string
	opts   pipeline.Options
	cache  cache.Cache
}

// pass re-reads the snapshot and runs one full pass.
func (s *previewServer) pass(ctx context.Context) (raw []byte, res *pipeline.Result, err error) {
	raw, err = readInput(s.path)
	if err != nil {
		return nil, nil, err
	}
	snap, err := discovery.ReadSnapshot(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, err
	}
	res, err = pipeline.Run(ctx, discovery.NewProvider(snap), s.opts)
	if err != nil {
		return nil, nil, err
	}
	return raw, res, nil
}

func (s *previewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>topoviz</title></head>
<body style="margin:0;background:#fff">
<img src="/graph.svg" alt="communication graph" style="max-width:100%%">
</body>
</html>
`)
}

func (s *previewServer) handleDOT(w http.ResponseWriter, r *http.Request) {
	_, res, err := s.pass(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	_, _ = w.Write([]byte(res.Document))
}

func (s *previewServer) handleSVG(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw, err := readInput(s.path)
	if err != nil {
		s.fail(w, err)
		return
	}
	key := cache.ArtifactKey(cache.Hash(raw), formatSVG, s.opts.Fingerprint())

	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "artifact")
		writeSVG(w, data)
		return
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	_, res, err := s.pass(ctx)
	if err != nil {
		s.fail(w, err)
		return
	}
	data, err := dot.RenderSVG(ctx, res.Document)
	if err != nil {
		s.fail(w, err)
		return
	}

	if err := s.cache.Set(ctx, key, data, serveArtifactTTL); err != nil {
		s.logger.Warnf("Artifact cache write failed: %v", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	writeSVG(w, data)
}

func (s *previewServer) fail(w http.ResponseWriter, err error) {
	s.logger.Errorf("Request failed: %v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeSVG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}

// hooksMiddleware reports request lifecycle events to the registered
// HTTP hooks.
func hooksMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// statusRecorder captures the response status for the hooks.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
