package cli

import "testing"

func TestDerivedOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format string
		want   string
	}{
		{"FromFile", "topology.json", "svg", "topology.svg"},
		{"FromFilePNG", "topology.json", "png", "topology.png"},
		{"NestedPath", "snapshots/live.json", "svg", "snapshots/live.svg"},
		{"NoExtension", "topology", "svg", "topology.svg"},
		{"Stdin", "-", "svg", "graph.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := derivedOutputPath(tt.input, tt.format); got != tt.want {
				t.Errorf("derivedOutputPath(%q, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
			}
		})
	}
}

func TestRenderCommandInvalidFormat(t *testing.T) {
	snapshot := writeTestSnapshot(t)

	cmd := newRenderCmd()
	cmd.SetArgs([]string{snapshot, "-f", "pdf"})
	cmd.SilenceErrors = true
	if err := cmd.ExecuteContext(testContext()); err == nil {
		t.Error("unsupported format should fail")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 * 1024 * 1024, "3.0 MiB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
