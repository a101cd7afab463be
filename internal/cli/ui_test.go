package cli

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/topoviz/topoviz/pkg/pipeline"
)

// captureStdout runs fn and returns everything it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	_ = w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestPrintWarning(t *testing.T) {
	out := captureStdout(t, func() {
		printWarning("Artifact cache unavailable: %s", "disk full")
	})
	if !strings.Contains(out, "disk full") {
		t.Errorf("warning output = %q", out)
	}
	if !strings.Contains(out, iconWarning) {
		t.Errorf("warning output missing icon: %q", out)
	}
}

func TestPrintFile(t *testing.T) {
	out := captureStdout(t, func() {
		printFile("graph.svg")
	})
	if !strings.Contains(out, "graph.svg") {
		t.Errorf("file output = %q", out)
	}
	if !strings.Contains(out, iconArrow) {
		t.Errorf("file output missing arrow: %q", out)
	}
}

func TestPrintStats(t *testing.T) {
	tests := []struct {
		name   string
		stats  pipeline.Stats
		cached bool
		want   []string
	}{
		{
			name:   "Fresh",
			stats:  pipeline.Stats{NodeCount: 4, ChannelCount: 7, Unconnected: 2},
			cached: false,
			want:   []string{"4 nodes", "7 channels", "2 unconnected", iconFresh},
		},
		{
			name:   "Cached",
			stats:  pipeline.Stats{},
			cached: true,
			want:   []string{iconCached},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(t, func() {
				printStats(tt.stats, tt.cached)
			})
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("stats output missing %q: %q", want, out)
				}
			}
		})
	}
}
