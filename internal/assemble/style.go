package assemble

// Style carries the recognized per-request visual options. Unknown JSON keys
// are ignored at the HTTP boundary; zero-valued fields take the defaults.
type Style struct {
	// OverlayOpacity is the explanation panel's background alpha.
	OverlayOpacity float64 `json:"overlay_opacity"`
	// ZoomStrength is the overlay zoom rate per sub-clip duration.
	ZoomStrength float64 `json:"zoom_strength"`
	// TextScale shrinks the overlay face relative to the slide body text.
	TextScale float64 `json:"text_scale"`
}

const (
	DefaultOverlayOpacity = 0.35
	DefaultZoomStrength   = 0.03
	DefaultTextScale      = 0.78
)

func (s Style) WithDefaults() Style {
	if s.OverlayOpacity <= 0 {
		s.OverlayOpacity = DefaultOverlayOpacity
	}
	if s.ZoomStrength <= 0 {
		s.ZoomStrength = DefaultZoomStrength
	}
	if s.TextScale <= 0 {
		s.TextScale = DefaultTextScale
	}
	return s
}
