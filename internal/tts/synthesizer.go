package tts

import (
	"context"
	"fmt"
	"io"

	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/ctxutil"
	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/logger"
)

// Synthesizer runs the ordered backend chain. Backend order is a
// configuration concern decided at construction, not control flow inside the
// pipeline.
type Synthesizer struct {
	log      *logger.Logger
	backends []Backend
	prober   *Prober
}

func NewSynthesizer(log *logger.Logger, prober *Prober, backends ...Backend) *Synthesizer {
	return &Synthesizer{
		log:      log.With("service", "Synthesizer"),
		backends: backends,
		prober:   prober,
	}
}

// Synthesize normalizes symbolic notation in text, then tries each backend in
// order until one writes playable audio to outPath. It fails only when every
// backend fails, reporting all of them.
func (s *Synthesizer) Synthesize(ctx context.Context, text string, outPath string) error {
	ctx = ctxutil.Default(ctx)
	processed := MathToWords(text)

	synthErr := &SynthesisError{}
	for _, b := range s.backends {
		if !b.Available() {
			synthErr.Attempted = append(synthErr.Attempted, b.Name())
			synthErr.Errs = append(synthErr.Errs, fmt.Errorf("backend not available"))
			continue
		}
		err := b.Synthesize(ctx, processed, outPath)
		if err == nil {
			s.log.Debug("synthesized audio", "backend", b.Name(), "path", outPath)
			return nil
		}
		s.log.Warn("speech backend failed", "backend", b.Name(), "error", err)
		synthErr.Attempted = append(synthErr.Attempted, b.Name())
		synthErr.Errs = append(synthErr.Errs, err)
	}
	return synthErr
}

// ProbeDuration reports the playable duration of a synthesized asset in
// seconds.
func (s *Synthesizer) ProbeDuration(ctx context.Context, path string) (float64, error) {
	return s.prober.Duration(ctx, path)
}

// Close releases backend resources, such as the remote TTS client connection.
func (s *Synthesizer) Close() error {
	var firstErr error
	for _, b := range s.backends {
		c, ok := b.(io.Closer)
		if !ok {
			continue
		}
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
