// Package render rasterizes slide and overlay images for the video pipeline.
package render

import (
	"fmt"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/logger"
)

const (
	// CanvasWidth and CanvasHeight fix the output frame size. Every slide
	// and overlay panel is rasterized at exactly this size so segments can
	// be spliced without resampling.
	CanvasWidth  = 1280
	CanvasHeight = 720

	slideWrapColumns   = 60
	overlayWrapColumns = 55
)

// Config holds the rasterization settings resolved once at construction.
type Config struct {
	FontPath    string
	FontSize    float64
	LineSpacing float64
}

func (c Config) withDefaults() Config {
	if c.FontSize <= 0 {
		c.FontSize = 36
	}
	if c.LineSpacing <= 0 {
		c.LineSpacing = 10
	}
	return c
}

// Renderer draws slides and overlay panels. Font resolution happens once in
// NewRenderer; per-call work is pure drawing.
type Renderer struct {
	log  *logger.Logger
	cfg  Config
	font *truetype.Font

	mainFace  font.Face
	titleFace font.Face
}

func NewRenderer(cfg Config, log *logger.Logger) (*Renderer, error) {
	slog := log.With("service", "Renderer")
	cfg = cfg.withDefaults()

	fnt, err := resolveFont(cfg.FontPath, slog)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		log:       slog,
		cfg:       cfg,
		font:      fnt,
		mainFace:  newFace(fnt, cfg.FontSize),
		titleFace: newFace(fnt, cfg.FontSize+6),
	}, nil
}

// resolveFont loads the configured TTF, falling back to the embedded Go
// Regular face when the file is missing or unparseable.
func resolveFont(path string, log *logger.Logger) (*truetype.Font, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			fnt, perr := truetype.Parse(data)
			if perr == nil {
				return fnt, nil
			}
			err = perr
		}
		log.Warn("configured font unusable, falling back to Go Regular", "path", path, "error", err)
	}
	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse fallback font: %w", err)
	}
	return fnt, nil
}

func newFace(fnt *truetype.Font, size float64) font.Face {
	return truetype.NewFace(fnt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// RenderSlide draws one slide: black background, white body text wrapped at
// 60 columns, and an optional centered title in the reserved top band.
func (r *Renderer) RenderSlide(text string, outPath string, title string) error {
	dc := gg.NewContext(CanvasWidth, CanvasHeight)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)

	marginX := float64(CanvasWidth) * 0.05
	y := float64(CanvasHeight) * 0.10

	if title != "" {
		dc.SetFontFace(r.titleFace)
		dc.DrawStringAnchored(title, float64(CanvasWidth)/2, y, 0.5, 1)
		y += (r.cfg.FontSize + 6) + r.cfg.FontSize*0.75
	}

	dc.SetFontFace(r.mainFace)
	lineHeight := r.cfg.FontSize + r.cfg.LineSpacing
	for i, line := range WrapColumns(text, slideWrapColumns) {
		dc.DrawString(line, marginX, y+float64(i+1)*lineHeight)
	}

	if err := dc.SavePNG(outPath); err != nil {
		return fmt.Errorf("save slide image: %w", err)
	}
	return nil
}

// RenderOverlayPanel draws a semi-transparent explanation panel on an
// otherwise transparent canvas: a black rectangle covering the central 80%
// width and 40% height, with the text centered inside it. textScale shrinks
// the face relative to the slide body text.
func (r *Renderer) RenderOverlayPanel(text string, outPath string, opacity float64, textScale float64) error {
	if textScale <= 0 {
		textScale = 0.78
	}

	dc := gg.NewContext(CanvasWidth, CanvasHeight)

	x0 := float64(CanvasWidth) * 0.10
	y0 := float64(CanvasHeight) * 0.30
	pw := float64(CanvasWidth) * 0.80
	ph := float64(CanvasHeight) * 0.40

	dc.SetRGBA(0, 0, 0, opacity)
	dc.DrawRectangle(x0, y0, pw, ph)
	dc.Fill()

	size := r.cfg.FontSize * textScale
	dc.SetFontFace(newFace(r.font, size))
	dc.SetRGB(1, 1, 1)

	lines := WrapColumns(text, overlayWrapColumns)
	lineHeight := size + r.cfg.LineSpacing
	cy := y0 + ph/2
	startY := cy - lineHeight*float64(len(lines))/2 + lineHeight/2
	for i, line := range lines {
		dc.DrawStringAnchored(line, float64(CanvasWidth)/2, startY+lineHeight*float64(i), 0.5, 0.5)
	}

	if err := dc.SavePNG(outPath); err != nil {
		return fmt.Errorf("save overlay image: %w", err)
	}
	return nil
}
