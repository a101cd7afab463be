package cli

import (
	"io"
	"os"
)

// openOutput opens the output destination: stdout for an empty or "-"
// path, otherwise the named file.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// nopCloser wraps a writer with a no-op Close so stdout is never
// closed by command cleanup.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// readInput reads the raw bytes of the snapshot argument: stdin for
// "-", otherwise the named file.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// snapshotArg returns the snapshot path from the positional args,
// defaulting to stdin.
func snapshotArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return "-"
}
