package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// spinnerFrames is the animation cycle drawn while a stage blocks.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner is a stderr progress indicator for the blocking stages of a
// rendering pass, such as the Graphviz layout. It shows the stage
// message with the elapsed time and erases itself on stop so command
// output stays clean. Stopping resolves the stage with a success or
// error line through the shared status printers.
type spinner struct {
	message string
	start   time.Time
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	mu      sync.Mutex
	started bool
	width   int // widest line drawn, for the final erase
}

// newSpinner creates a spinner for one stage. It stops on its own when
// ctx is cancelled.
func newSpinner(ctx context.Context, message string) *spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &spinner{
		message: message,
		start:   time.Now(),
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start begins the animation.
func (s *spinner) Start() {
	s.started = true
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// draw repaints the spinner line with the current frame and elapsed time.
func (s *spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elapsed := time.Since(s.start).Round(100 * time.Millisecond)
	line := fmt.Sprintf("%s %s", s.message, elapsed)
	if w := len(line) + 2; w > s.width {
		s.width = w
	}
	fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(line))
}

// Stop halts the animation and erases the line.
func (s *spinner) Stop() {
	s.cancel()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	if s.started {
		<-s.stopped
	}
	s.clearLine()
}

func (s *spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", s.width))
}

// StopWithSuccess stops the spinner and resolves the stage with a
// success line.
func (s *spinner) StopWithSuccess(format string, args ...any) {
	s.Stop()
	printSuccess(format, args...)
}

// StopWithError stops the spinner and resolves the stage with an
// error line.
func (s *spinner) StopWithError(format string, args ...any) {
	s.Stop()
	printError(format, args...)
}
