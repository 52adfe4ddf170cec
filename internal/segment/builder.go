package segment

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/ctxutil"
	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/logger"
	"github.com/jilali-elhamidi/generate-video-ai/internal/tts"
)

// SlideRenderer rasterizes one sentence to a slide image.
type SlideRenderer interface {
	RenderSlide(text string, outPath string, title string) error
}

// Speech synthesizes narration audio and reports its playable duration.
type Speech interface {
	Synthesize(ctx context.Context, text string, outPath string) error
	ProbeDuration(ctx context.Context, path string) (float64, error)
}

// Builder turns ordered sentences into ordered segments. Any synthesis or
// rendering failure aborts the whole build; downstream assembly assumes
// every segment carries valid primary audio.
type Builder struct {
	log    *logger.Logger
	render SlideRenderer
	speech Speech
}

func NewBuilder(render SlideRenderer, speech Speech, log *logger.Logger) *Builder {
	return &Builder{
		log:    log.With("service", "SegmentBuilder"),
		render: render,
		speech: speech,
	}
}

// Build renders and synthesizes one segment per sentence inside workDir.
// The title appears only on the first slide. explanations and displayFlags
// are parallel to sentences by index; entries beyond their length are
// treated as absent.
func (b *Builder) Build(ctx context.Context, sentences []string, title string, explanations []string, displayFlags []*bool, workDir string) ([]Segment, error) {
	ctx = ctxutil.Default(ctx)

	segments := make([]Segment, 0, len(sentences))
	for i, sentence := range sentences {
		slideTitle := ""
		if i == 0 {
			slideTitle = title
		}

		imgPath := filepath.Join(workDir, fmt.Sprintf("sent_%03d.png", i))
		if err := b.render.RenderSlide(sentence, imgPath, slideTitle); err != nil {
			return nil, fmt.Errorf("render slide %d: %w", i, err)
		}

		audioPath := filepath.Join(workDir, fmt.Sprintf("sent_%03d.wav", i))
		if err := b.speech.Synthesize(ctx, sentence, audioPath); err != nil {
			return nil, fmt.Errorf("synthesize sentence %d: %w", i, err)
		}
		dur := b.probeClamped(ctx, audioPath)

		seg := Segment{
			Image:    imgPath,
			Audio:    audioPath,
			Duration: dur,
		}

		if i < len(explanations) && explanations[i] != "" {
			expText := explanations[i]
			expPath := filepath.Join(workDir, fmt.Sprintf("exp_%03d.wav", i))
			if err := b.speech.Synthesize(ctx, expText, expPath); err != nil {
				return nil, fmt.Errorf("synthesize explanation %d: %w", i, err)
			}
			seg.ExplanationText = expText
			seg.ExplanationAudio = expPath
			seg.ExplanationDuration = b.probeClamped(ctx, expPath)
		}

		if i < len(displayFlags) {
			seg.DisplayOverride = displayFlags[i]
		}

		segments = append(segments, seg)
	}

	b.log.Info("built segments", "count", len(segments))
	return segments, nil
}

// probeClamped absorbs timing anomalies: probe failures and non-positive or
// NaN durations all collapse to the safety duration.
func (b *Builder) probeClamped(ctx context.Context, path string) float64 {
	d, err := b.speech.ProbeDuration(ctx, path)
	if err != nil {
		b.log.Warn("duration probe failed, using safety duration", "path", path, "error", err)
		return tts.SafetyDuration
	}
	return tts.ClampDuration(d)
}
