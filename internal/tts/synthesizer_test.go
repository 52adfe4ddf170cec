package tts

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/logger"
)

type fakeBackend struct {
	name      string
	available bool
	err       error
	calls     int
	lastText  string
}

func (f *fakeBackend) Name() string    { return f.name }
func (f *fakeBackend) Available() bool { return f.available }
func (f *fakeBackend) Synthesize(_ context.Context, text, _ string) error {
	f.calls++
	f.lastText = text
	return f.err
}

type closableBackend struct {
	fakeBackend
	closed bool
}

func (c *closableBackend) Close() error {
	c.closed = true
	return nil
}

func TestSynthesizePrimaryBackendWins(t *testing.T) {
	primary := &fakeBackend{name: "gcp_tts", available: true}
	fallback := &fakeBackend{name: "espeak", available: true}
	s := NewSynthesizer(logger.Nop(), nil, primary, fallback)

	if err := s.Synthesize(context.Background(), "hello.", "/tmp/out.wav"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.calls != 1 || fallback.calls != 0 {
		t.Fatalf("expected only primary to run, got primary=%d fallback=%d", primary.calls, fallback.calls)
	}
}

func TestSynthesizeFallsBackInOrder(t *testing.T) {
	primary := &fakeBackend{name: "gcp_tts", available: true, err: errors.New("quota exceeded")}
	fallback := &fakeBackend{name: "espeak", available: true}
	s := NewSynthesizer(logger.Nop(), nil, primary, fallback)

	if err := s.Synthesize(context.Background(), "hello.", "/tmp/out.wav"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Fatalf("expected both backends tried, got primary=%d fallback=%d", primary.calls, fallback.calls)
	}
}

func TestSynthesizeSkipsUnavailableBackends(t *testing.T) {
	primary := &fakeBackend{name: "gcp_tts", available: false}
	fallback := &fakeBackend{name: "espeak", available: true}
	s := NewSynthesizer(logger.Nop(), nil, primary, fallback)

	if err := s.Synthesize(context.Background(), "hello.", "/tmp/out.wav"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.calls != 0 || fallback.calls != 1 {
		t.Fatalf("unavailable backend should not be invoked")
	}
}

func TestSynthesizeAggregatesAllFailures(t *testing.T) {
	primary := &fakeBackend{name: "gcp_tts", available: true, err: errors.New("rpc down")}
	fallback := &fakeBackend{name: "espeak", available: false}
	s := NewSynthesizer(logger.Nop(), nil, primary, fallback)

	err := s.Synthesize(context.Background(), "hello.", "/tmp/out.wav")
	if err == nil {
		t.Fatalf("expected aggregated failure")
	}
	var synthErr *SynthesisError
	if !errors.As(err, &synthErr) {
		t.Fatalf("expected *SynthesisError, got %T", err)
	}
	if len(synthErr.Attempted) != 2 {
		t.Fatalf("expected both backends reported, got %v", synthErr.Attempted)
	}
	msg := err.Error()
	if !strings.Contains(msg, "gcp_tts") || !strings.Contains(msg, "espeak") {
		t.Fatalf("error should name attempted backends: %q", msg)
	}
}

func TestSynthesizeNormalizesBeforeBackend(t *testing.T) {
	b := &fakeBackend{name: "gcp_tts", available: true}
	s := NewSynthesizer(logger.Nop(), nil, b)

	if err := s.Synthesize(context.Background(), "a + b = c", "/tmp/out.wav"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.lastText != "a plus b equals c" {
		t.Fatalf("backend received unnormalized text: %q", b.lastText)
	}
}

func TestSynthesizerCloseClosesBackends(t *testing.T) {
	cb := &closableBackend{fakeBackend: fakeBackend{name: "gcp_tts", available: true}}
	plain := &fakeBackend{name: "espeak", available: true}
	s := NewSynthesizer(logger.Nop(), nil, cb, plain)

	if err := s.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cb.closed {
		t.Fatalf("closable backend must be closed")
	}
}
