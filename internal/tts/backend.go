package tts

import (
	"context"
	"fmt"
	"strings"
)

// Backend converts already-normalized text into a playable WAV file at
// outPath. Implementations own their transport (cloud client, system binary)
// and report readiness via Available.
type Backend interface {
	Name() string
	Available() bool
	Synthesize(ctx context.Context, text string, outPath string) error
}

// SynthesisError aggregates the failures of every attempted backend. It is
// raised only when no backend produced audio.
type SynthesisError struct {
	Attempted []string
	Errs      []error
}

func (e *SynthesisError) Error() string {
	if len(e.Attempted) == 0 {
		return "no speech backends configured"
	}
	msgs := make([]string, 0, len(e.Errs))
	for i, err := range e.Errs {
		msgs = append(msgs, fmt.Sprintf("%s: %v", e.Attempted[i], err))
	}
	return fmt.Sprintf("all speech backends failed (attempted: %s): %s",
		strings.Join(e.Attempted, ", "), strings.Join(msgs, "; "))
}
