// Package assemble composes timed per-segment clips and splices them into
// the final muxed video.
package assemble

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/ctxutil"
	pkgerrors "github.com/jilali-elhamidi/generate-video-ai/internal/pkg/errors"
	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/logger"
	"github.com/jilali-elhamidi/generate-video-ai/internal/segment"
)

// PanelRenderer rasterizes one overlay sub-sentence panel.
type PanelRenderer interface {
	RenderOverlayPanel(text string, outPath string, opacity float64, textScale float64) error
}

// Assembler builds one uniformly encoded part per segment and splices the
// parts with the concat demuxer. Parts share the exact encode profile, so
// the splice is a straight sequential copy with no cross-fade or resampling
// between clips.
type Assembler struct {
	log    *logger.Logger
	runner Runner
	panels PanelRenderer
}

func New(runner Runner, panels PanelRenderer, log *logger.Logger) *Assembler {
	return &Assembler{
		log:    log.With("service", "Assembler"),
		runner: runner,
		panels: panels,
	}
}

// Assemble writes the final video to outPath. Intermediate part files live
// in workDir and are removed best-effort whether or not assembly succeeds.
func (a *Assembler) Assemble(ctx context.Context, segs []segment.Segment, style Style, showDefault bool, workDir string, outPath string) error {
	ctx = ctxutil.Default(ctx)
	if len(segs) == 0 {
		return fmt.Errorf("no content to render: %w", pkgerrors.ErrNoContent)
	}
	st := style.WithDefaults()

	var intermediates []string
	defer func() {
		for _, p := range intermediates {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				a.log.Warn("failed to remove intermediate (ignored)", "path", p, "error", err)
			}
		}
	}()

	parts := make([]string, 0, len(segs))
	for i, seg := range segs {
		partPath := filepath.Join(workDir, fmt.Sprintf("part_%03d.mp4", i))
		args, err := a.segmentArgs(seg, st, showDefault, workDir, i, partPath)
		if err != nil {
			return fmt.Errorf("prepare segment %d: %w", i, err)
		}
		if err := a.runner.Run(ctx, args...); err != nil {
			return fmt.Errorf("compose segment %d: %w", i, err)
		}
		parts = append(parts, partPath)
		intermediates = append(intermediates, partPath)
	}

	listPath := filepath.Join(workDir, "concat.txt")
	if err := writeConcatList(listPath, parts); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}
	intermediates = append(intermediates, listPath)

	err := a.runner.Run(ctx,
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		outPath,
	)
	if err != nil {
		return fmt.Errorf("concatenate segments: %w", err)
	}

	a.log.Info("assembled video", "segments", len(segs), "output", outPath)
	return nil
}

// segmentArgs renders the segment's overlay panels (when shown) and returns
// the full ffmpeg invocation for its part file.
func (a *Assembler) segmentArgs(seg segment.Segment, st Style, showDefault bool, workDir string, idx int, partPath string) ([]string, error) {
	total := seg.TotalDuration()
	show := seg.ShowOverlay(showDefault)

	var panelPaths []string
	if show {
		for j, sub := range subSentences(seg.ExplanationText) {
			panelPath := filepath.Join(workDir, fmt.Sprintf("panel_%03d_%02d.png", idx, j))
			if err := a.panels.RenderOverlayPanel(sub, panelPath, st.OverlayOpacity, st.TextScale); err != nil {
				return nil, fmt.Errorf("render overlay panel %d: %w", j, err)
			}
			panelPaths = append(panelPaths, panelPath)
		}
	}

	args := []string{
		"-y",
		"-loop", "1", "-t", secs(total), "-i", seg.Image,
		"-i", seg.Audio,
	}
	if seg.ExplanationAudio != "" {
		args = append(args, "-i", seg.ExplanationAudio)
	}
	if show {
		perDur := seg.ExplanationDuration / float64(len(panelPaths))
		for _, p := range panelPaths {
			args = append(args, "-loop", "1", "-t", secs(perDur), "-i", p)
		}
	}

	args = append(args,
		"-filter_complex", buildFilterGraph(seg, st, show, len(panelPaths)),
		"-map", "[v]",
		"-map", "[a]",
		"-r", fmt.Sprintf("%d", outputFPS),
		"-c:v", "libx264",
		"-preset", "medium",
		"-threads", "4",
		"-c:a", "aac",
		"-t", secs(total),
		partPath,
	)
	return args, nil
}

func writeConcatList(listPath string, parts []string) error {
	var sb strings.Builder
	for _, p := range parts {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		fmt.Fprintf(&sb, "file '%s'\n", abs)
	}
	return os.WriteFile(listPath, []byte(sb.String()), 0o644)
}
