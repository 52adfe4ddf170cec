package tts

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/ctxutil"
	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/logger"
)

// espeak-ng's default speaking rate is 175 wpm; narration reads better a
// touch slower.
const espeakRate = 165

// espeakBackend is the offline fallback. Lower quality than the neural
// backend but has no network or credential dependencies.
type espeakBackend struct {
	log     *logger.Logger
	binPath string
	timeout time.Duration
}

func NewEspeakBackend(log *logger.Logger, binPath string) Backend {
	if binPath == "" {
		binPath = "espeak-ng"
	}
	return &espeakBackend{
		log:     log.With("backend", "espeak"),
		binPath: binPath,
		timeout: 2 * time.Minute,
	}
}

func (e *espeakBackend) Name() string { return "espeak" }

func (e *espeakBackend) Available() bool {
	_, err := exec.LookPath(e.binPath)
	return err == nil
}

func (e *espeakBackend) Synthesize(ctx context.Context, text string, outPath string) error {
	ctx = ctxutil.Default(ctx)
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.binPath,
		"-s", strconv.Itoa(espeakRate),
		"-w", outPath,
		text,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		e.log.Error("espeak failed", "error", err, "output", string(out))
		return fmt.Errorf("espeak failed: %w", err)
	}
	return nil
}
