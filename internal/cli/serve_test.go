package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"

	"github.com/topoviz/topoviz/pkg/cache"
	"github.com/topoviz/topoviz/pkg/pipeline"
)

func testPreviewServer(t *testing.T) *previewServer {
	t.Helper()
	return &previewServer{
		logger: newLogger(io.Discard, charmlog.ErrorLevel),
		path:   writeTestSnapshot(t),
		opts:   pipeline.Options{Logger: newLogger(io.Discard, charmlog.ErrorLevel)},
		cache:  cache.NewNullCache(),
	}
}

func TestHandleDOT(t *testing.T) {
	ps := testPreviewServer(t)

	rec := httptest.NewRecorder()
	ps.handleDOT(rec, httptest.NewRequest(http.MethodGet, "/graph.dot", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "graphviz") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "digraph") {
		t.Errorf("body missing DOT document:\n%s", rec.Body.String())
	}
}

func TestHandleDOTRereadsSnapshot(t *testing.T) {
	ps := testPreviewServer(t)
	ps.path = writeTestSnapshot(t)

	rec := httptest.NewRecorder()
	ps.handleDOT(rec, httptest.NewRequest(http.MethodGet, "/graph.dot", nil))
	if !strings.Contains(rec.Body.String(), "/chatter") {
		t.Fatalf("first response missing channel:\n%s", rec.Body.String())
	}
}

func TestHandleDOTMissingSnapshot(t *testing.T) {
	ps := testPreviewServer(t)
	ps.path = "/nonexistent/topology.json"

	rec := httptest.NewRecorder()
	ps.handleDOT(rec, httptest.NewRequest(http.MethodGet, "/graph.dot", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestHandleIndex(t *testing.T) {
	ps := testPreviewServer(t)

	rec := httptest.NewRecorder()
	ps.handleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/graph.svg") {
		t.Error("index page should embed the SVG endpoint")
	}
}

func TestHooksMiddleware(t *testing.T) {
	handler := hooksMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("middleware should pass status through, got %d", rec.Code)
	}
}

func TestStatusRecorderDefault(t *testing.T) {
	handler := hooksMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("implicit status = %d, want 200", rec.Code)
	}
}
