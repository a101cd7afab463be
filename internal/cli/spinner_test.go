package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner(context.Background(), "Rendering svg")
	s.Start()
	time.Sleep(150 * time.Millisecond)
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := newSpinner(context.Background(), "Rendering svg")

	// Stop must not block when the animation never ran.
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop() blocked without a running spinner")
	}
}

func TestSpinnerDoubleStop(t *testing.T) {
	s := newSpinner(context.Background(), "Rendering png")
	s.Start()
	s.Stop()
	s.Stop() // second stop must be safe
}

func TestSpinnerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, "Rendering svg")
	s.Start()

	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop on context cancellation")
	}

	// Stop after cancellation must still be safe.
	s.Stop()
}

func TestSpinnerStopWithStatus(t *testing.T) {
	s := newSpinner(context.Background(), "Rendering svg")
	s.Start()
	s.StopWithSuccess("Laid out svg (%s)", formatBytes(2048))

	s = newSpinner(context.Background(), "Rendering png")
	s.Start()
	s.StopWithError("Layout failed")
}

func TestSpinnerTracksElapsed(t *testing.T) {
	s := newSpinner(context.Background(), "Rendering svg")
	time.Sleep(20 * time.Millisecond)
	if time.Since(s.start) < 20*time.Millisecond {
		t.Error("spinner start time should predate the stage work")
	}
	s.draw(spinnerFrames[0])
	if s.width == 0 {
		t.Error("draw should record the painted width for the erase")
	}
}
