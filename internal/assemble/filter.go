package assemble

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jilali-elhamidi/generate-video-ai/internal/script"
	"github.com/jilali-elhamidi/generate-video-ai/internal/segment"
)

const (
	outputFPS = 24

	segmentFadeSeconds = 0.3
	overlayFadeSeconds = 0.15
)

// subSentences splits explanation text the same way narration sentences are
// split. An explanation that yields no sub-sentences still produces one
// sub-clip covering the whole text, so the overlay is never dropped silently.
func subSentences(text string) []string {
	subs := script.SplitToSentences(text)
	if len(subs) == 0 {
		return []string{text}
	}
	return subs
}

func secs(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

// buildFilterGraph composes the per-segment filter_complex. Input layout:
// 0 = slide image (looped), 1 = narration audio, 2 = explanation audio when
// present, then one looped panel image per overlay sub-sentence.
//
// The graph ends the video chain with a single format=yuv420p. That node is
// the only pixel-format normalization in the pipeline: fades and crops widen
// the pixel representation, and splicing parts with inconsistent formats
// corrupts the output. It must stay terminal and must not be repeated.
func buildFilterGraph(seg segment.Segment, st Style, showOverlay bool, nPanels int) string {
	total := seg.TotalDuration()
	fadeOutStart := math.Max(0, total-segmentFadeSeconds)

	var sb strings.Builder

	videoIn := "[0:v]scale=1280:720,setsar=1"
	if showOverlay && nPanels > 0 {
		perDur := seg.ExplanationDuration / float64(nPanels)
		subFadeOut := math.Max(0, perDur-overlayFadeSeconds)

		sb.WriteString(videoIn + "[base];")

		labels := make([]string, 0, nPanels)
		for i := 0; i < nPanels; i++ {
			label := fmt.Sprintf("[ov%d]", i)
			// Zoom by upscaling with a per-frame time term, then recentering
			// a fixed 1280x720 crop. The time term must live in scale:
			// scale re-evaluates its size with eval=frame and keeps the
			// panel's alpha, while crop fixes its size at configuration
			// (only its x/y are per-frame). zoompan would flatten the alpha.
			zoom := fmt.Sprintf("1+%s*t/%s", secs(st.ZoomStrength), secs(perDur))
			sb.WriteString(fmt.Sprintf(
				"[%d:v]format=rgba,scale=w='iw*(%s)':h='ih*(%s)':eval=frame,"+
					"crop=1280:720:x='(iw-ow)/2':y='(ih-oh)/2',"+
					"fade=t=in:st=0:d=%s:alpha=1,fade=t=out:st=%s:d=%s:alpha=1,setsar=1%s;",
				3+i, zoom, zoom,
				secs(overlayFadeSeconds), secs(subFadeOut), secs(overlayFadeSeconds),
				label,
			))
			labels = append(labels, label)
		}

		sb.WriteString(strings.Join(labels, ""))
		sb.WriteString(fmt.Sprintf("concat=n=%d:v=1:a=0[ovseq];", nPanels))
		sb.WriteString(fmt.Sprintf("[ovseq]setpts=PTS-STARTPTS+%s/TB[ovd];", secs(seg.Duration)))
		sb.WriteString(fmt.Sprintf(
			"[base][ovd]overlay=(W-w)/2:(H-h)/2:eof_action=pass:enable='between(t,%s,%s)'[comp];",
			secs(seg.Duration), secs(total),
		))
		videoIn = "[comp]"
	} else {
		videoIn += ","
	}

	// Fades apply to the fully composed clip, then the one normalization.
	sb.WriteString(fmt.Sprintf(
		"%sfade=t=in:st=0:d=%s,fade=t=out:st=%s:d=%s,format=yuv420p[v];",
		videoIn, secs(segmentFadeSeconds), secs(fadeOutStart), secs(segmentFadeSeconds),
	))

	if seg.ExplanationAudio != "" {
		delayMS := int(math.Round(seg.Duration * 1000))
		sb.WriteString(fmt.Sprintf(
			"[2:a]adelay=%d|%d[ea];[1:a][ea]amix=inputs=2:duration=longest:normalize=0,apad[a]",
			delayMS, delayMS,
		))
	} else {
		sb.WriteString("[1:a]apad[a]")
	}

	return sb.String()
}
