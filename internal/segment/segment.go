// Package segment defines the atomic synchronization unit of the pipeline
// and builds one segment per narrated sentence.
package segment

// Segment carries everything the assembler needs for one sentence: the
// rendered slide, the narration audio with its authoritative duration, and
// the optional explanation track.
type Segment struct {
	Image    string
	Audio    string
	Duration float64

	ExplanationAudio    string
	ExplanationDuration float64
	ExplanationText     string

	// DisplayOverride forces the explanation overlay on or off for this
	// segment. nil defers to the request-wide default.
	DisplayOverride *bool
}

// TotalDuration is the segment's on-screen time: narration plus explanation.
func (s Segment) TotalDuration() float64 {
	return s.Duration + s.ExplanationDuration
}

// ShowOverlay resolves the effective display flag: the per-segment override
// wins when set, otherwise the request-wide default applies. Segments
// without explanation text never show an overlay.
func (s Segment) ShowOverlay(def bool) bool {
	if s.ExplanationText == "" {
		return false
	}
	if s.DisplayOverride != nil {
		return *s.DisplayOverride
	}
	return def
}
