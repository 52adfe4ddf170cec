package assemble

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pkgerrors "github.com/jilali-elhamidi/generate-video-ai/internal/pkg/errors"
	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/logger"
	"github.com/jilali-elhamidi/generate-video-ai/internal/segment"
)

type fakeRunner struct {
	calls  [][]string
	failOn int // 1-based call index to fail at, 0 = never
}

func (f *fakeRunner) Run(_ context.Context, args ...string) error {
	f.calls = append(f.calls, args)
	if f.failOn > 0 && len(f.calls) == f.failOn {
		return errors.New("encoder exploded")
	}
	// Simulate the encoder producing its output file (last argument).
	out := args[len(args)-1]
	_ = os.WriteFile(out, []byte("x"), 0o644)
	return nil
}

type fakePanels struct {
	texts []string
	err   error
}

func (f *fakePanels) RenderOverlayPanel(text, outPath string, _, _ float64) error {
	f.texts = append(f.texts, text)
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outPath, []byte("png"), 0o644)
}

func hasArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func TestAssembleZeroSegmentsFails(t *testing.T) {
	a := New(&fakeRunner{}, &fakePanels{}, logger.Nop())
	err := a.Assemble(context.Background(), nil, Style{}, false, t.TempDir(), filepath.Join(t.TempDir(), "out.mp4"))
	if err == nil {
		t.Fatalf("expected error for zero segments")
	}
	if !errors.Is(err, pkgerrors.ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestAssembleRunsOneEncodePerSegmentPlusConcat(t *testing.T) {
	runner := &fakeRunner{}
	a := New(runner, &fakePanels{}, logger.Nop())
	dir := t.TempDir()
	out := filepath.Join(dir, "out.mp4")

	segs := []segment.Segment{
		{Image: "s0.png", Audio: "a0.wav", Duration: 2.0},
		{Image: "s1.png", Audio: "a1.wav", Duration: 3.0},
	}
	if err := a.Assemble(context.Background(), segs, Style{}, false, dir, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.calls) != 3 {
		t.Fatalf("expected 2 segment encodes + 1 concat, got %d", len(runner.calls))
	}

	concat := runner.calls[2]
	if !hasArg(concat, "concat") || !hasArg(concat, "copy") {
		t.Fatalf("final call should be a stream-copy concat splice: %v", concat)
	}
	for _, call := range runner.calls[:2] {
		if !hasArg(call, "libx264") || !hasArg(call, "aac") || !hasArg(call, "24") {
			t.Fatalf("segment encode missing fixed profile: %v", call)
		}
	}
}

func TestAssembleOverlayPanelsRendered(t *testing.T) {
	runner := &fakeRunner{}
	panels := &fakePanels{}
	a := New(runner, panels, logger.Nop())
	dir := t.TempDir()

	segs := []segment.Segment{{
		Image: "s.png", Audio: "a.wav", Duration: 2.0,
		ExplanationAudio: "e.wav", ExplanationDuration: 2.0,
		ExplanationText: "First point. Second point.",
	}}
	if err := a.Assemble(context.Background(), segs, Style{}, true, dir, filepath.Join(dir, "out.mp4")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(panels.texts) != 2 {
		t.Fatalf("expected one panel per sub-sentence, got %v", panels.texts)
	}
	if panels.texts[0] != "First point." || panels.texts[1] != "Second point." {
		t.Fatalf("unexpected panel texts: %v", panels.texts)
	}
}

func TestAssembleOverrideSuppressesOverlay(t *testing.T) {
	panels := &fakePanels{}
	a := New(&fakeRunner{}, panels, logger.Nop())
	dir := t.TempDir()
	off := false

	segs := []segment.Segment{{
		Image: "s.png", Audio: "a.wav", Duration: 2.0,
		ExplanationAudio: "e.wav", ExplanationDuration: 1.0,
		ExplanationText: "detail.", DisplayOverride: &off,
	}}
	if err := a.Assemble(context.Background(), segs, Style{}, true, dir, filepath.Join(dir, "out.mp4")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(panels.texts) != 0 {
		t.Fatalf("override=false must suppress the overlay despite the default: %v", panels.texts)
	}
}

func TestAssembleCleansIntermediatesOnFailure(t *testing.T) {
	runner := &fakeRunner{failOn: 2}
	a := New(runner, &fakePanels{}, logger.Nop())
	dir := t.TempDir()

	segs := []segment.Segment{
		{Image: "s0.png", Audio: "a0.wav", Duration: 1.0},
		{Image: "s1.png", Audio: "a1.wav", Duration: 1.0},
	}
	err := a.Assemble(context.Background(), segs, Style{}, false, dir, filepath.Join(dir, "out.mp4"))
	if err == nil {
		t.Fatalf("expected failure")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "part_000.mp4")); !os.IsNotExist(statErr) {
		t.Fatalf("intermediate part should have been removed on failure")
	}
}

func TestAssembleCleansIntermediatesOnSuccess(t *testing.T) {
	runner := &fakeRunner{}
	a := New(runner, &fakePanels{}, logger.Nop())
	dir := t.TempDir()

	segs := []segment.Segment{{Image: "s.png", Audio: "a.wav", Duration: 1.0}}
	if err := a.Assemble(context.Background(), segs, Style{}, false, dir, filepath.Join(dir, "out.mp4")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "part_") || e.Name() == "concat.txt" {
			t.Fatalf("intermediate %s should have been removed", e.Name())
		}
	}
}

func TestAssembleSegmentInputsOrdering(t *testing.T) {
	runner := &fakeRunner{}
	a := New(runner, &fakePanels{}, logger.Nop())
	dir := t.TempDir()

	segs := []segment.Segment{{
		Image: "slide.png", Audio: "narr.wav", Duration: 2.0,
		ExplanationAudio: "exp.wav", ExplanationDuration: 1.0,
		ExplanationText: "detail.",
	}}
	if err := a.Assemble(context.Background(), segs, Style{}, true, dir, filepath.Join(dir, "out.mp4")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	args := strings.Join(runner.calls[0], " ")
	slideIdx := strings.Index(args, "slide.png")
	narrIdx := strings.Index(args, "narr.wav")
	expIdx := strings.Index(args, "exp.wav")
	panelIdx := strings.Index(args, "panel_000_00.png")
	if !(slideIdx < narrIdx && narrIdx < expIdx && expIdx < panelIdx) {
		t.Fatalf("inputs out of order: %s", args)
	}
	if !strings.Contains(args, "-t "+secs(3.0)) {
		t.Fatalf("segment should be clamped to its total duration: %s", args)
	}
}
