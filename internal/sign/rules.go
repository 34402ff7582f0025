// Package sign classifies finger-state vectors into discrete signs and
// maps sign IDs to their display words.
package sign

import (
	"github.com/ayusman/signspeak/internal/feature"
)

// Sign IDs of the built-in vocabulary.
const (
	SignHello    = 0
	SignYes      = 3
	SignILoveYou = 7
	SignGood     = 8
	SignBad      = 9
	SignStop     = 10
	SignMore     = 12
	SignLess     = 13
	SignWater    = 14
	SignVictory  = 20
	SignLetterA  = 21
	SignLetterB  = 22
	SignLetterC  = 23
)

// Rule-table distance thresholds, in hand sizes.
const (
	// PinchMaxGap is the widest thumb-to-index gap that still reads as a
	// closed circle ("Yes").
	PinchMaxGap = 0.2
	// CShapeMinGap and CShapeMaxGap bound the open curve of the letter C.
	CShapeMinGap = 0.2
	CShapeMaxGap = 0.4
	// VictorySpreadMin is the minimum index-middle spread for a V.
	VictorySpreadMin = 0.2
	// TogetherMaxSpread is the maximum index-middle spread for fingers
	// held flat against each other (letter B).
	TogetherMaxSpread = 0.3
	// ThumbNearWristMax bounds how far a fist-side thumb may sit from
	// the wrist for the letter A.
	ThumbNearWristMax = 0.6
)

// Rule is one entry of the classification table: a predicate over the
// finger-state vector plus the sign and base confidence it yields.
// ThumbSensitive rules key on the thumb's vertical direction and have
// their confidence scaled down when that direction was borderline.
type Rule struct {
	Name           string
	SignID         int
	Confidence     float64
	ThumbSensitive bool
	Match          func(s feature.State, m feature.Metrics) bool
}

// DefaultRules is the classification table, evaluated in order with the
// first match winning. Specific shapes are listed before the general
// shapes they would otherwise be shadowed by: the pinched "Yes" before
// the open letter C, the closed letter B before the generic four-finger
// "Water", the side-thumb letter A before the bare fist.
var DefaultRules = []Rule{
	{
		Name: "thumbs-up", SignID: SignGood, Confidence: 0.9, ThumbSensitive: true,
		Match: func(s feature.State, m feature.Metrics) bool {
			return s.Thumb && !s.Index && !s.Middle && !s.Ring && !s.Pinky &&
				s.ThumbDir == feature.ThumbUp
		},
	},
	{
		Name: "thumbs-down", SignID: SignBad, Confidence: 0.85, ThumbSensitive: true,
		Match: func(s feature.State, m feature.Metrics) bool {
			return !s.Index && !s.Middle && !s.Ring && !s.Pinky &&
				s.ThumbDir == feature.ThumbDown
		},
	},
	{
		Name: "ok-circle", SignID: SignYes, Confidence: 0.9,
		Match: func(s feature.State, m feature.Metrics) bool {
			return s.Thumb && s.Index && !s.Middle && !s.Ring && !s.Pinky &&
				m.ThumbIndexGap < PinchMaxGap
		},
	},
	{
		Name: "c-shape", SignID: SignLetterC, Confidence: 0.75,
		Match: func(s feature.State, m feature.Metrics) bool {
			return s.Thumb && s.Index && !s.Middle && !s.Ring && !s.Pinky &&
				m.ThumbIndexGap >= CShapeMinGap && m.ThumbIndexGap < CShapeMaxGap
		},
	},
	{
		Name: "i-love-you", SignID: SignILoveYou, Confidence: 0.85,
		Match: func(s feature.State, m feature.Metrics) bool {
			return s.Thumb && s.Index && !s.Middle && !s.Ring && s.Pinky
		},
	},
	{
		Name: "victory", SignID: SignVictory, Confidence: 0.85,
		Match: func(s feature.State, m feature.Metrics) bool {
			return !s.Thumb && s.Index && s.Middle && !s.Ring && !s.Pinky &&
				m.IndexMiddleGap > VictorySpreadMin
		},
	},
	{
		Name: "pointing", SignID: SignMore, Confidence: 0.8,
		Match: func(s feature.State, m feature.Metrics) bool {
			return !s.Thumb && s.Index && !s.Middle && !s.Ring && !s.Pinky
		},
	},
	{
		Name: "fist-thumb-side", SignID: SignLetterA, Confidence: 0.8,
		Match: func(s feature.State, m feature.Metrics) bool {
			return s.Thumb && !s.Index && !s.Middle && !s.Ring && !s.Pinky &&
				m.ThumbWristOffset < ThumbNearWristMax
		},
	},
	{
		Name: "fist", SignID: SignStop, Confidence: 0.9,
		Match: func(s feature.State, m feature.Metrics) bool {
			return !s.Thumb && !s.Index && !s.Middle && !s.Ring && !s.Pinky
		},
	},
	{
		Name: "open-palm", SignID: SignHello, Confidence: 0.9,
		Match: func(s feature.State, m feature.Metrics) bool {
			return s.Thumb && s.Index && s.Middle && s.Ring && s.Pinky
		},
	},
	{
		Name: "three-fingers", SignID: SignLess, Confidence: 0.8,
		Match: func(s feature.State, m feature.Metrics) bool {
			return !s.Thumb && s.Index && s.Middle && s.Ring && !s.Pinky
		},
	},
	{
		Name: "flat-hand", SignID: SignLetterB, Confidence: 0.8,
		Match: func(s feature.State, m feature.Metrics) bool {
			return !s.Thumb && s.Index && s.Middle && s.Ring && s.Pinky &&
				m.IndexMiddleGap < TogetherMaxSpread
		},
	},
	{
		Name: "four-fingers", SignID: SignWater, Confidence: 0.75,
		Match: func(s feature.State, m feature.Metrics) bool {
			return !s.Thumb && s.Index && s.Middle && s.Ring && s.Pinky
		},
	},
}
