// Package feature derives per-finger state from a raw hand-landmark set.
// Everything here is a pure function of the current frame; nothing is
// retained between calls.
package feature

import (
	"github.com/ayusman/signspeak/internal/detector"
)

// ThumbDirection is the coarse orientation of an extended thumb,
// used to break ties between otherwise identical finger states.
type ThumbDirection int

const (
	// ThumbNone means the thumb is not extended so direction is undefined.
	ThumbNone ThumbDirection = iota
	// ThumbUp means the thumb tip is clearly above the wrist.
	ThumbUp
	// ThumbDown means the thumb tip is clearly below the wrist.
	ThumbDown
	// ThumbSide means the thumb is extended roughly horizontally.
	ThumbSide
)

// String returns a short label for logging.
func (d ThumbDirection) String() string {
	switch d {
	case ThumbUp:
		return "up"
	case ThumbDown:
		return "down"
	case ThumbSide:
		return "side"
	default:
		return "none"
	}
}

// Geometric thresholds, all normalized by hand size (wrist to middle
// MCP distance). These are tuned against the pose fixtures in the
// detector package, not carried over from any particular tracker.
const (
	// ThumbDirMargin is the minimum vertical offset (in hand sizes) of
	// the thumb tip from the wrist before the thumb counts as pointing
	// up or down rather than sideways.
	ThumbDirMargin = 0.35

	// ThumbBorderlineBand marks the ambiguous zone: a vertical offset
	// between ThumbDirMargin and this value still classifies as up or
	// down but is flagged borderline, and confidence is scaled down.
	ThumbBorderlineBand = 0.70

	// MinHandSize rejects degenerate landmark sets whose wrist and
	// middle MCP nearly coincide.
	MinHandSize = 0.02
)

// State is the five-finger extension vector plus thumb orientation,
// derived fresh for each frame.
type State struct {
	Thumb  bool
	Index  bool
	Middle bool
	Ring   bool
	Pinky  bool

	ThumbDir ThumbDirection
	// ThumbBorderline is set when the thumb direction fell inside the
	// ambiguous band and should not be trusted fully.
	ThumbBorderline bool
}

// ExtendedCount returns how many fingers are extended.
func (s State) ExtendedCount() int {
	n := 0
	for _, f := range []bool{s.Thumb, s.Index, s.Middle, s.Ring, s.Pinky} {
		if f {
			n++
		}
	}
	return n
}

// Metrics carries the normalized distances the rule table needs beyond
// the boolean finger states.
type Metrics struct {
	// HandSize is the wrist to middle-MCP distance in frame units.
	HandSize float64
	// ThumbIndexGap is the thumb-tip to index-tip distance in hand sizes.
	ThumbIndexGap float64
	// IndexMiddleGap is the index-tip to middle-tip distance in hand sizes.
	IndexMiddleGap float64
	// ThumbWristOffset is the horizontal thumb-tip offset from the wrist
	// in hand sizes.
	ThumbWristOffset float64
}

// Extract converts one landmark set into a finger-state vector and its
// metrics. Returns ok=false for a nil hand or a degenerate landmark set;
// callers treat that as "no hand".
func Extract(hand *detector.HandLandmarks) (State, Metrics, bool) {
	if hand == nil {
		return State{}, Metrics{}, false
	}

	size := hand.HandSize()
	if size < MinHandSize {
		return State{}, Metrics{}, false
	}

	wrist := hand.Points[detector.Wrist]

	s := State{
		Thumb:  thumbExtended(hand),
		Index:  fingerExtended(hand, detector.IndexTip, detector.IndexPIP),
		Middle: fingerExtended(hand, detector.MiddleTip, detector.MiddlePIP),
		Ring:   fingerExtended(hand, detector.RingTip, detector.RingPIP),
		Pinky:  fingerExtended(hand, detector.PinkyTip, detector.PinkyPIP),
	}

	if s.Thumb {
		s.ThumbDir, s.ThumbBorderline = thumbDirection(hand, size)
	}

	thumbTip := hand.Points[detector.ThumbTip]
	indexTip := hand.Points[detector.IndexTip]
	middleTip := hand.Points[detector.MiddleTip]

	m := Metrics{
		HandSize:         size,
		ThumbIndexGap:    detector.Distance2D(thumbTip, indexTip) / size,
		IndexMiddleGap:   detector.Distance2D(indexTip, middleTip) / size,
		ThumbWristOffset: abs(thumbTip.X-wrist.X) / size,
	}

	return s, m, true
}

// fingerExtended reports whether a non-thumb finger is extended: its tip
// sits above its PIP joint in image coordinates (Y increases downward).
func fingerExtended(hand *detector.HandLandmarks, tip, pip int) bool {
	return hand.Points[tip].Y < hand.Points[pip].Y
}

// thumbExtended reports whether the thumb sticks out from the palm: its
// tip is horizontally farther from the wrist than its MCP joint.
func thumbExtended(hand *detector.HandLandmarks) bool {
	wristX := hand.Points[detector.Wrist].X
	tipOff := abs(hand.Points[detector.ThumbTip].X - wristX)
	mcpOff := abs(hand.Points[detector.ThumbMCP].X - wristX)
	return tipOff > mcpOff
}

// thumbDirection classifies an extended thumb as up, down or sideways
// from the vertical offset of its tip relative to the wrist.
func thumbDirection(hand *detector.HandLandmarks, size float64) (ThumbDirection, bool) {
	vert := (hand.Points[detector.Wrist].Y - hand.Points[detector.ThumbTip].Y) / size

	switch {
	case vert >= ThumbDirMargin:
		return ThumbUp, vert < ThumbBorderlineBand
	case vert <= -ThumbDirMargin:
		return ThumbDown, vert > -ThumbBorderlineBand
	default:
		return ThumbSide, false
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
