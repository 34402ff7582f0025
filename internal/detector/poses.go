package detector

// Preset landmark sets covering the recognizable sign vocabulary.
// Coordinates are normalized frame coordinates (Y increases downward)
// with the wrist anchored at (0.5, 0.8), the geometry a right hand held
// palm-out in front of the camera roughly produces. Used by the mock
// detector and throughout the tests.

// wristPos is the anchor point all poses are built around.
var wristPos = Point3D{X: 0.5, Y: 0.8}

// thumbJoints is the CMC/MCP/IP/TIP chain for one thumb pose.
type thumbJoints [4]Point3D

var (
	thumbClosed = thumbJoints{
		{X: 0.55, Y: 0.76}, {X: 0.56, Y: 0.72}, {X: 0.54, Y: 0.70}, {X: 0.52, Y: 0.70},
	}
	thumbUp = thumbJoints{
		{X: 0.56, Y: 0.75}, {X: 0.58, Y: 0.68}, {X: 0.59, Y: 0.58}, {X: 0.60, Y: 0.48},
	}
	thumbDown = thumbJoints{
		{X: 0.56, Y: 0.78}, {X: 0.58, Y: 0.82}, {X: 0.59, Y: 0.88}, {X: 0.60, Y: 0.95},
	}
	thumbSide = thumbJoints{
		{X: 0.56, Y: 0.76}, {X: 0.60, Y: 0.74}, {X: 0.65, Y: 0.76}, {X: 0.70, Y: 0.78},
	}
	// Thumb resting against the side of a fist, barely past its own MCP.
	thumbSideNarrow = thumbJoints{
		{X: 0.55, Y: 0.76}, {X: 0.54, Y: 0.72}, {X: 0.55, Y: 0.74}, {X: 0.56, Y: 0.76},
	}
	// Thumb tip touching the extended index tip.
	thumbPinch = thumbJoints{
		{X: 0.55, Y: 0.74}, {X: 0.54, Y: 0.66}, {X: 0.55, Y: 0.50}, {X: 0.57, Y: 0.36},
	}
	// Thumb curved toward a half-curled index, a hand-width apart.
	thumbCurve = thumbJoints{
		{X: 0.55, Y: 0.74}, {X: 0.54, Y: 0.68}, {X: 0.57, Y: 0.60}, {X: 0.60, Y: 0.54},
	}
	// Thumb raised only slightly above the wrist line.
	thumbBarelyUp = thumbJoints{
		{X: 0.56, Y: 0.76}, {X: 0.58, Y: 0.74}, {X: 0.59, Y: 0.735}, {X: 0.60, Y: 0.73},
	}
)

// fingerChain holds MCP/PIP/DIP/TIP for one finger.
type fingerChain struct {
	mcp, pip, dip, tip Point3D
}

// Extended and curled joint chains per finger. Tips sit above PIPs when
// extended and below when curled, which is what the feature extractor
// keys on.
var (
	indexExtended  = fingerChain{Point3D{X: 0.56, Y: 0.68}, Point3D{X: 0.57, Y: 0.55}, Point3D{X: 0.58, Y: 0.45}, Point3D{X: 0.58, Y: 0.35}}
	middleExtended = fingerChain{Point3D{X: 0.52, Y: 0.68}, Point3D{X: 0.51, Y: 0.52}, Point3D{X: 0.50, Y: 0.40}, Point3D{X: 0.50, Y: 0.28}}
	ringExtended   = fingerChain{Point3D{X: 0.48, Y: 0.68}, Point3D{X: 0.47, Y: 0.55}, Point3D{X: 0.46, Y: 0.43}, Point3D{X: 0.46, Y: 0.33}}
	pinkyExtended  = fingerChain{Point3D{X: 0.44, Y: 0.68}, Point3D{X: 0.43, Y: 0.60}, Point3D{X: 0.42, Y: 0.50}, Point3D{X: 0.42, Y: 0.40}}

	indexCurled  = fingerChain{Point3D{X: 0.56, Y: 0.68}, Point3D{X: 0.56, Y: 0.66}, Point3D{X: 0.54, Y: 0.70}, Point3D{X: 0.53, Y: 0.74}}
	middleCurled = fingerChain{Point3D{X: 0.52, Y: 0.68}, Point3D{X: 0.52, Y: 0.66}, Point3D{X: 0.50, Y: 0.70}, Point3D{X: 0.49, Y: 0.74}}
	ringCurled   = fingerChain{Point3D{X: 0.48, Y: 0.68}, Point3D{X: 0.48, Y: 0.66}, Point3D{X: 0.46, Y: 0.70}, Point3D{X: 0.45, Y: 0.74}}
	pinkyCurled  = fingerChain{Point3D{X: 0.44, Y: 0.68}, Point3D{X: 0.44, Y: 0.66}, Point3D{X: 0.42, Y: 0.70}, Point3D{X: 0.41, Y: 0.74}}
)

// newHand assembles a HandLandmarks from a thumb pose and four finger
// chains.
func newHand(thumb thumbJoints, index, middle, ring, pinky fingerChain) HandLandmarks {
	h := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}
	h.Points[Wrist] = wristPos

	h.Points[ThumbCMC] = thumb[0]
	h.Points[ThumbMCP] = thumb[1]
	h.Points[ThumbIP] = thumb[2]
	h.Points[ThumbTip] = thumb[3]

	set := func(mcp int, c fingerChain) {
		h.Points[mcp] = c.mcp
		h.Points[mcp+1] = c.pip
		h.Points[mcp+2] = c.dip
		h.Points[mcp+3] = c.tip
	}
	set(IndexMCP, index)
	set(MiddleMCP, middle)
	set(RingMCP, ring)
	set(PinkyMCP, pinky)

	return h
}

// OpenPalmLandmarks returns an open hand, every finger extended ("Hello").
func OpenPalmLandmarks() HandLandmarks {
	return newHand(thumbSide, indexExtended, middleExtended, ringExtended, pinkyExtended)
}

// FistLandmarks returns a closed fist, thumb tucked in ("Stop").
func FistLandmarks() HandLandmarks {
	return newHand(thumbClosed, indexCurled, middleCurled, ringCurled, pinkyCurled)
}

// ThumbsUpLandmarks returns a fist with the thumb extended upward ("Good").
func ThumbsUpLandmarks() HandLandmarks {
	return newHand(thumbUp, indexCurled, middleCurled, ringCurled, pinkyCurled)
}

// ThumbsDownLandmarks returns a fist with the thumb pointing down ("Bad").
func ThumbsDownLandmarks() HandLandmarks {
	return newHand(thumbDown, indexCurled, middleCurled, ringCurled, pinkyCurled)
}

// PointingLandmarks returns only the index finger extended ("More").
func PointingLandmarks() HandLandmarks {
	return newHand(thumbClosed, indexExtended, middleCurled, ringCurled, pinkyCurled)
}

// VictoryLandmarks returns index and middle fingers spread in a V.
func VictoryLandmarks() HandLandmarks {
	return newHand(thumbClosed, indexExtended, middleExtended, ringCurled, pinkyCurled)
}

// OKSignLandmarks returns the thumb and index tips touching in a circle
// ("Yes").
func OKSignLandmarks() HandLandmarks {
	h := newHand(thumbPinch, indexExtended, middleCurled, ringCurled, pinkyCurled)
	h.Points[IndexTip] = Point3D{X: 0.56, Y: 0.35}
	return h
}

// ILoveYouLandmarks returns thumb, index and pinky extended.
func ILoveYouLandmarks() HandLandmarks {
	return newHand(thumbSide, indexExtended, middleCurled, ringCurled, pinkyExtended)
}

// ThreeFingerLandmarks returns index, middle and ring extended ("Less").
func ThreeFingerLandmarks() HandLandmarks {
	return newHand(thumbClosed, indexExtended, middleExtended, ringExtended, pinkyCurled)
}

// FourFingerLandmarks returns all fingers but the thumb extended and
// spread apart ("Water").
func FourFingerLandmarks() HandLandmarks {
	return newHand(thumbClosed, indexExtended, middleExtended, ringExtended, pinkyExtended)
}

// FlatHandLandmarks returns four extended fingers held together, thumb
// tucked across the palm (letter "B").
func FlatHandLandmarks() HandLandmarks {
	h := newHand(thumbClosed, indexExtended, middleExtended, ringExtended, pinkyExtended)
	// Pull index and middle tips together.
	h.Points[IndexPIP] = Point3D{X: 0.53, Y: 0.55}
	h.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.45}
	h.Points[IndexTip] = Point3D{X: 0.52, Y: 0.35}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.33}
	return h
}

// CShapeLandmarks returns thumb and a half-curled index forming a C.
func CShapeLandmarks() HandLandmarks {
	h := newHand(thumbCurve, indexExtended, middleCurled, ringCurled, pinkyCurled)
	h.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55}
	h.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.52}
	h.Points[IndexTip] = Point3D{X: 0.58, Y: 0.50}
	return h
}

// ThumbSideFistLandmarks returns a fist with the thumb resting against
// its side (letter "A").
func ThumbSideFistLandmarks() HandLandmarks {
	return newHand(thumbSideNarrow, indexCurled, middleCurled, ringCurled, pinkyCurled)
}

// BorderlineThumbsUpLandmarks returns a thumbs-up with the thumb barely
// above the wrist line, inside the ambiguous-direction band.
func BorderlineThumbsUpLandmarks() HandLandmarks {
	return newHand(thumbBarelyUp, indexCurled, middleCurled, ringCurled, pinkyCurled)
}
