package sign

import (
	"math"
	"testing"
	"time"

	"github.com/ayusman/signspeak/internal/detector"
	"github.com/ayusman/signspeak/internal/feature"
)

// classify runs feature extraction and classification on one pose.
func classify(t *testing.T, hand detector.HandLandmarks) (int, float64) {
	t.Helper()

	s, m, ok := feature.Extract(&hand)
	if !ok {
		t.Fatal("expected a valid extraction")
	}
	return NewClassifier().Classify(s, m)
}

func TestClassifier_Vocabulary(t *testing.T) {
	tests := []struct {
		name string
		hand detector.HandLandmarks
		want int
	}{
		{"open palm is Hello", detector.OpenPalmLandmarks(), SignHello},
		{"ok circle is Yes", detector.OKSignLandmarks(), SignYes},
		{"thumb index pinky is I Love You", detector.ILoveYouLandmarks(), SignILoveYou},
		{"thumbs up is Good", detector.ThumbsUpLandmarks(), SignGood},
		{"thumbs down is Bad", detector.ThumbsDownLandmarks(), SignBad},
		{"fist is Stop", detector.FistLandmarks(), SignStop},
		{"pointing is More", detector.PointingLandmarks(), SignMore},
		{"three fingers is Less", detector.ThreeFingerLandmarks(), SignLess},
		{"spread four fingers is Water", detector.FourFingerLandmarks(), SignWater},
		{"spread two fingers is Victory", detector.VictoryLandmarks(), SignVictory},
		{"fist with side thumb is letter A", detector.ThumbSideFistLandmarks(), SignLetterA},
		{"flat hand is letter B", detector.FlatHandLandmarks(), SignLetterB},
		{"open curve is letter C", detector.CShapeLandmarks(), SignLetterC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, conf := classify(t, tt.hand)
			if id != tt.want {
				t.Errorf("classified as sign %d, want %d", id, tt.want)
			}
			if conf <= 0 || conf > 1 {
				t.Errorf("confidence %f outside (0,1]", conf)
			}
		})
	}
}

func TestClassifier_NoMatch(t *testing.T) {
	// Thumb, middle and ring extended matches no rule.
	s := feature.State{Thumb: true, Middle: true, Ring: true, ThumbDir: feature.ThumbSide}

	id, conf := NewClassifier().Classify(s, feature.Metrics{})
	if id != NoSign {
		t.Errorf("expected NoSign, got %d", id)
	}
	if conf != 0 {
		t.Errorf("expected zero confidence, got %f", conf)
	}
}

func TestClassifier_BorderlineThumbScaling(t *testing.T) {
	clear, clearConf := classify(t, detector.ThumbsUpLandmarks())
	borderline, borderlineConf := classify(t, detector.BorderlineThumbsUpLandmarks())

	if clear != SignGood || borderline != SignGood {
		t.Fatalf("expected both poses to classify as Good, got %d and %d", clear, borderline)
	}

	want := clearConf * AmbiguousThumbScale
	if math.Abs(borderlineConf-want) > 1e-9 {
		t.Errorf("borderline confidence %f, want %f", borderlineConf, want)
	}
}

// The table lists specific shapes before the general shapes that would
// otherwise shadow them.
func TestClassifier_RuleOrder(t *testing.T) {
	tests := []struct {
		name   string
		hand   detector.HandLandmarks
		want   int
		shadow int
	}{
		{"letter B wins over Water", detector.FlatHandLandmarks(), SignLetterB, SignWater},
		{"letter A wins over Stop", detector.ThumbSideFistLandmarks(), SignLetterA, SignStop},
		{"Yes wins over letter C", detector.OKSignLandmarks(), SignYes, SignLetterC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, _ := classify(t, tt.hand)
			if id == tt.shadow {
				t.Fatalf("general rule %d shadowed the specific one", tt.shadow)
			}
			if id != tt.want {
				t.Errorf("classified as sign %d, want %d", id, tt.want)
			}
		})
	}
}

func TestClassifier_CustomRules(t *testing.T) {
	rules := []Rule{
		{
			Name: "always", SignID: 42, Confidence: 0.5,
			Match: func(feature.State, feature.Metrics) bool { return true },
		},
	}

	id, conf := NewClassifierWithRules(rules).Classify(feature.State{}, feature.Metrics{})
	if id != 42 {
		t.Errorf("expected sign 42, got %d", id)
	}
	if conf != 0.5 {
		t.Errorf("expected confidence 0.5, got %f", conf)
	}
}

func TestNone(t *testing.T) {
	now := time.Now()

	d := None(now)
	if d.SignID != NoSign {
		t.Errorf("expected NoSign, got %d", d.SignID)
	}
	if d.Confidence != 0 {
		t.Errorf("expected zero confidence, got %f", d.Confidence)
	}
	if !d.At.Equal(now) {
		t.Errorf("expected timestamp %v, got %v", now, d.At)
	}
}
