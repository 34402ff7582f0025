// Package detector provides hand-landmark tracking interfaces and types
// for sign-language recognition.
package detector

import "math"

// Hand landmark indices following the MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is a single landmark position. X and Y are normalized to [0,1]
// relative to the frame width/height, Y increasing downward. Z is depth
// relative to the wrist and may be zero for trackers that omit it.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks is the 21-point landmark set for one detected hand,
// produced once per frame by the tracker and discarded after feature
// extraction.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Distance2D returns the planar Euclidean distance between two landmarks,
// ignoring depth. Finger-state geometry works in the image plane.
func Distance2D(a, b Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// HandSize returns the wrist to middle-MCP distance, the reference length
// all geometric thresholds are normalized by.
func (h *HandLandmarks) HandSize() float64 {
	return Distance2D(h.Points[Wrist], h.Points[MiddleMCP])
}
