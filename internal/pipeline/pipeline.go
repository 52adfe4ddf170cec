// Package pipeline ties segmentation, segment building, and assembly into a
// single synchronous generation run.
package pipeline

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jilali-elhamidi/generate-video-ai/internal/assemble"
	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/ctxutil"
	pkgerrors "github.com/jilali-elhamidi/generate-video-ai/internal/pkg/errors"
	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/logger"
	"github.com/jilali-elhamidi/generate-video-ai/internal/script"
	"github.com/jilali-elhamidi/generate-video-ai/internal/segment"
)

// Request is one generation call. Explanations and DisplayFlags are parallel
// to the script's sentences by index.
type Request struct {
	Script       string
	Title        string
	Explanations []string
	// ShowExplanations is the request-wide overlay default; per-sentence
	// DisplayFlags entries override it.
	ShowExplanations bool
	DisplayFlags     []*bool
	Style            assemble.Style
}

// SegmentBuilder produces ordered segments for ordered sentences.
type SegmentBuilder interface {
	Build(ctx context.Context, sentences []string, title string, explanations []string, displayFlags []*bool, workDir string) ([]segment.Segment, error)
}

// Assembler splices segments into the output file.
type Assembler interface {
	Assemble(ctx context.Context, segs []segment.Segment, style assemble.Style, showDefault bool, workDir string, outPath string) error
}

// Pipeline runs one script through to one muxed video file. Each run owns
// its scratch directory and uniquely named output, so concurrent runs never
// share mutable state.
type Pipeline struct {
	log       *logger.Logger
	builder   SegmentBuilder
	assembler Assembler
	outputDir string
}

func New(builder SegmentBuilder, assembler Assembler, outputDir string, log *logger.Logger) *Pipeline {
	if outputDir == "" {
		outputDir = "."
	}
	return &Pipeline{
		log:       log.With("service", "Pipeline"),
		builder:   builder,
		assembler: assembler,
		outputDir: outputDir,
	}
}

// Generate returns the absolute path of the finished video. Temporary audio
// assets are deleted best-effort whether assembly succeeds or fails; the
// scratch directory itself is removed on the way out.
func (p *Pipeline) Generate(ctx context.Context, req Request) (string, error) {
	ctx = ctxutil.Default(ctx)

	if strings.TrimSpace(req.Script) == "" {
		return "", fmt.Errorf("script field is required: %w", pkgerrors.ErrInvalidArgument)
	}
	sentences := script.SplitToSentences(req.Script)
	if len(sentences) == 0 {
		return "", pkgerrors.ErrNoContent
	}

	workDir, err := os.MkdirTemp("", "slides_sent_")
	if err != nil {
		return "", fmt.Errorf("create scratch dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			p.log.Warn("failed to remove scratch dir (ignored)", "dir", workDir, "error", err)
		}
	}()

	segs, err := p.builder.Build(ctx, sentences, req.Title, req.Explanations, req.DisplayFlags, workDir)
	if err != nil {
		return "", err
	}
	defer p.removeAudio(segs)

	outPath := filepath.Join(p.outputDir, outputName())
	if err := p.assembler.Assemble(ctx, segs, req.Style, req.ShowExplanations, workDir, outPath); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(outPath)
	if err != nil {
		abs = outPath
	}
	p.log.Info("video generated", "output", abs, "segments", len(segs))
	return abs, nil
}

func outputName() string {
	u := uuid.New()
	return fmt.Sprintf("video_%s.mp4", hex.EncodeToString(u[:]))
}

func (p *Pipeline) removeAudio(segs []segment.Segment) {
	for _, s := range segs {
		for _, path := range []string{s.Audio, s.ExplanationAudio} {
			if path == "" {
				continue
			}
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				p.log.Warn("failed to remove audio asset (ignored)", "path", path, "error", err)
			}
		}
	}
}
