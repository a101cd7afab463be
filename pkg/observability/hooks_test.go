package observability

import (
	"context"
	"testing"
	"time"
)

type recordingPassHooks struct {
	discoveryStarts int
	aggregates      int
	serializes      int
}

func (h *recordingPassHooks) OnDiscoveryStart(context.Context) { h.discoveryStarts++ }
func (h *recordingPassHooks) OnDiscoveryComplete(context.Context, int, time.Duration, error) {}
func (h *recordingPassHooks) OnAggregateStart(context.Context, int)                          {}
func (h *recordingPassHooks) OnAggregateComplete(context.Context, int, time.Duration) {
	h.aggregates++
}
func (h *recordingPassHooks) OnSerializeStart(context.Context) {}
func (h *recordingPassHooks) OnSerializeComplete(context.Context, int, time.Duration) {
	h.serializes++
}

func TestSetPassHooks(t *testing.T) {
	defer Reset()

	rec := &recordingPassHooks{}
	SetPassHooks(rec)

	ctx := context.Background()
	Pass().OnDiscoveryStart(ctx)
	Pass().OnAggregateComplete(ctx, 3, time.Millisecond)
	Pass().OnSerializeComplete(ctx, 100, time.Millisecond)

	if rec.discoveryStarts != 1 || rec.aggregates != 1 || rec.serializes != 1 {
		t.Errorf("hooks not invoked: %+v", rec)
	}
}

func TestSetNilKeepsDefaults(t *testing.T) {
	defer Reset()

	SetPassHooks(nil)
	if _, ok := Pass().(NoopPassHooks); !ok {
		t.Error("nil registration should keep no-op hooks")
	}
}

func TestReset(t *testing.T) {
	SetPassHooks(&recordingPassHooks{})
	SetCacheHooks(NoopCacheHooks{})
	Reset()

	if _, ok := Pass().(NoopPassHooks); !ok {
		t.Error("Reset should restore no-op pass hooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset should restore no-op cache hooks")
	}
}
