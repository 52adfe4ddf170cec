package assemble

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/ctxutil"
	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/logger"
)

// Runner executes one encoder invocation.
type Runner interface {
	Run(ctx context.Context, args ...string) error
}

type ffmpegRunner struct {
	log     *logger.Logger
	binPath string
	timeout time.Duration
}

// NewFFmpegRunner wraps the ffmpeg binary. Encoding long scripts is slow, so
// the per-invocation timeout is generous.
func NewFFmpegRunner(log *logger.Logger, binPath string) Runner {
	if binPath == "" {
		binPath = "ffmpeg"
	}
	return &ffmpegRunner{
		log:     log.With("service", "FFmpeg"),
		binPath: binPath,
		timeout: 30 * time.Minute,
	}
}

func (r *ffmpegRunner) Run(ctx context.Context, args ...string) error {
	ctx = ctxutil.Default(ctx)
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.binPath, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		// Full encoder output stays in the server log; callers and HTTP
		// clients only ever see the exit status.
		r.log.Error("ffmpeg failed", "error", err, "output", string(out))
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}
