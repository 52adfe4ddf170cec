package tts

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/ctxutil"
	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/logger"
)

// Prober reads media durations with ffprobe.
type Prober struct {
	log     *logger.Logger
	binPath string
	timeout time.Duration
}

func NewProber(log *logger.Logger, binPath string) *Prober {
	if binPath == "" {
		binPath = "ffprobe"
	}
	return &Prober{
		log:     log.With("service", "Prober"),
		binPath: binPath,
		timeout: 30 * time.Second,
	}
}

// Duration returns the container duration of the media file at path, in
// seconds.
func (p *Prober) Duration(ctx context.Context, path string) (float64, error) {
	ctx = ctxutil.Default(ctx)
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.binPath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		p.log.Error("ffprobe failed", "path", path, "error", err, "output", string(out))
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", strings.TrimSpace(string(out)), err)
	}
	return d, nil
}
