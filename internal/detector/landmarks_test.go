package detector

import (
	"errors"
	"math"
	"testing"
)

func TestDistance2D(t *testing.T) {
	tests := []struct {
		name string
		a, b Point3D
		want float64
	}{
		{"same point", Point3D{X: 0.5, Y: 0.5}, Point3D{X: 0.5, Y: 0.5}, 0},
		{"horizontal", Point3D{X: 0, Y: 0}, Point3D{X: 3, Y: 0}, 3},
		{"diagonal", Point3D{X: 0, Y: 0}, Point3D{X: 3, Y: 4}, 5},
		{"ignores z", Point3D{X: 0, Y: 0, Z: 9}, Point3D{X: 3, Y: 4, Z: -9}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance2D(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestHandLandmarks_HandSize(t *testing.T) {
	hand := OpenPalmLandmarks()

	size := hand.HandSize()
	if size <= 0 {
		t.Fatalf("expected positive hand size, got %f", size)
	}

	want := Distance2D(hand.Points[Wrist], hand.Points[MiddleMCP])
	if math.Abs(size-want) > 1e-9 {
		t.Errorf("got %f, want wrist to middle-MCP distance %f", size, want)
	}

	// The zero value has coincident landmarks.
	var empty HandLandmarks
	if got := empty.HandSize(); got != 0 {
		t.Errorf("expected zero size for the zero value, got %f", got)
	}
}

func TestPoseFixtures_Complete(t *testing.T) {
	poses := map[string]HandLandmarks{
		"open palm":   OpenPalmLandmarks(),
		"fist":        FistLandmarks(),
		"thumbs up":   ThumbsUpLandmarks(),
		"thumbs down": ThumbsDownLandmarks(),
		"pointing":    PointingLandmarks(),
		"victory":     VictoryLandmarks(),
		"ok sign":     OKSignLandmarks(),
		"i love you":  ILoveYouLandmarks(),
	}

	for name, hand := range poses {
		if hand.HandSize() <= 0 {
			t.Errorf("pose %q has degenerate hand size", name)
		}
		if hand.Score <= 0 {
			t.Errorf("pose %q has no detection score", name)
		}
		if hand.Points[Wrist] != (Point3D{X: 0.5, Y: 0.8}) {
			t.Errorf("pose %q is not anchored at the wrist", name)
		}
	}
}

func TestMockDetector(t *testing.T) {
	m := NewMockDetector()

	hands, err := m.Detect(nil)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(hands) != 0 {
		t.Errorf("expected no hands by default, got %d", len(hands))
	}

	m.SetHands([]HandLandmarks{OpenPalmLandmarks()})
	hands, _ = m.Detect(nil)
	if len(hands) != 1 {
		t.Fatalf("expected 1 hand, got %d", len(hands))
	}

	wantErr := errors.New("tracker crashed")
	m.SetError(wantErr)
	if _, err := m.Detect(nil); !errors.Is(err, wantErr) {
		t.Errorf("expected the configured error, got %v", err)
	}

	if err := m.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
