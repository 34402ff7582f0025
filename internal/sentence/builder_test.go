package sentence

import (
	"testing"
	"time"

	"github.com/ayusman/signspeak/internal/sign"
)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// at returns a detection for signID stamped offset after the test epoch.
func at(signID int, conf float64, offset time.Duration) sign.Detection {
	return sign.Detection{SignID: signID, Confidence: conf, At: testStart.Add(offset)}
}

func newTestBuilder() *Builder {
	return NewBuilder(sign.DefaultCatalog(), Params{
		ConfidenceThreshold: 0.4,
		HoldDuration:        time.Second,
	})
}

func TestBuilder_CommitsAfterHold(t *testing.T) {
	b := newTestBuilder()

	if _, ok := b.Observe(at(sign.SignHello, 0.9, 0)); ok {
		t.Fatal("first observation must not commit")
	}
	if _, ok := b.Observe(at(sign.SignHello, 0.9, 500*time.Millisecond)); ok {
		t.Fatal("half the hold duration must not commit")
	}

	commit, ok := b.Observe(at(sign.SignHello, 0.9, time.Second))
	if !ok {
		t.Fatal("expected a commit after the full hold duration")
	}
	if commit.SignID != sign.SignHello {
		t.Errorf("committed sign %d, want %d", commit.SignID, sign.SignHello)
	}
	if commit.Word != "Hello" {
		t.Errorf("committed word %q, want %q", commit.Word, "Hello")
	}
	if !commit.At.Equal(testStart.Add(time.Second)) {
		t.Errorf("commit stamped %v, want %v", commit.At, testStart.Add(time.Second))
	}
}

func TestBuilder_JustUnderHoldDoesNotCommit(t *testing.T) {
	b := newTestBuilder()

	b.Observe(at(sign.SignGood, 0.9, 0))
	if _, ok := b.Observe(at(sign.SignGood, 0.9, time.Second-time.Millisecond)); ok {
		t.Error("a hold one millisecond short must not commit")
	}
}

func TestBuilder_BelowThresholdIgnored(t *testing.T) {
	b := newTestBuilder()

	// Low-confidence frames never start a hold.
	b.Observe(at(sign.SignHello, 0.3, 0))
	if _, ok := b.Observe(at(sign.SignHello, 0.3, 2*time.Second)); ok {
		t.Error("below-threshold detections must not commit")
	}

	// A low-confidence frame mid-hold drops the candidate entirely.
	b.Observe(at(sign.SignHello, 0.9, 3*time.Second))
	b.Observe(at(sign.SignHello, 0.3, 3500*time.Millisecond))
	if _, ok := b.Observe(at(sign.SignHello, 0.9, 4*time.Second)); ok {
		t.Error("the hold must restart after a low-confidence frame")
	}
}

func TestBuilder_NoRepeatWhileHeld(t *testing.T) {
	b := newTestBuilder()

	b.Observe(at(sign.SignStop, 0.9, 0))
	if _, ok := b.Observe(at(sign.SignStop, 0.9, time.Second)); !ok {
		t.Fatal("expected the first commit")
	}

	// Holding the same sign for several more seconds must not commit again.
	for i := 1; i <= 5; i++ {
		offset := time.Second + time.Duration(i)*time.Second
		if _, ok := b.Observe(at(sign.SignStop, 0.9, offset)); ok {
			t.Fatalf("unexpected repeat commit at %v", offset)
		}
	}
}

func TestBuilder_RecommitsAfterHandDrops(t *testing.T) {
	b := newTestBuilder()

	b.Observe(at(sign.SignStop, 0.9, 0))
	if _, ok := b.Observe(at(sign.SignStop, 0.9, time.Second)); !ok {
		t.Fatal("expected the first commit")
	}

	// Dropping the hand releases the cooldown.
	b.Observe(sign.None(testStart.Add(2 * time.Second)))

	b.Observe(at(sign.SignStop, 0.9, 3*time.Second))
	if _, ok := b.Observe(at(sign.SignStop, 0.9, 4*time.Second)); !ok {
		t.Error("expected the same sign to commit again after the hand dropped")
	}
}

func TestBuilder_NewSignEndsCooldown(t *testing.T) {
	b := newTestBuilder()

	b.Observe(at(sign.SignGood, 0.9, 0))
	if _, ok := b.Observe(at(sign.SignGood, 0.9, time.Second)); !ok {
		t.Fatal("expected the first commit")
	}

	// A different sign becomes the candidate straight out of cooldown,
	// with its hold measured from its own first frame.
	b.Observe(at(sign.SignBad, 0.9, 2*time.Second))
	if _, ok := b.Observe(at(sign.SignBad, 0.9, 2500*time.Millisecond)); ok {
		t.Fatal("the new candidate must serve its own full hold")
	}

	commit, ok := b.Observe(at(sign.SignBad, 0.9, 3*time.Second))
	if !ok {
		t.Fatal("expected the second sign to commit")
	}
	if commit.Word != "Bad" {
		t.Errorf("committed word %q, want %q", commit.Word, "Bad")
	}
}

func TestBuilder_CandidateSwitchRestartsHold(t *testing.T) {
	b := newTestBuilder()

	b.Observe(at(sign.SignHello, 0.9, 0))
	// Switch candidate mid-hold: the clock restarts for the new sign.
	b.Observe(at(sign.SignYes, 0.9, 800*time.Millisecond))
	if _, ok := b.Observe(at(sign.SignYes, 0.9, 1200*time.Millisecond)); ok {
		t.Fatal("the new candidate must not inherit the old hold")
	}

	if _, ok := b.Observe(at(sign.SignYes, 0.9, 1800*time.Millisecond)); !ok {
		t.Error("expected the new candidate to commit after its own hold")
	}
}

func TestBuilder_Reset(t *testing.T) {
	b := newTestBuilder()

	b.Observe(at(sign.SignHello, 0.9, 0))
	b.Reset()

	// The hold restarts from scratch after a reset.
	b.Observe(at(sign.SignHello, 0.9, 900*time.Millisecond))
	if _, ok := b.Observe(at(sign.SignHello, 0.9, 1100*time.Millisecond)); ok {
		t.Error("reset must drop the in-flight hold")
	}
}

func TestBuilder_CatalogMissDropsCommit(t *testing.T) {
	// A catalog that cannot resolve the held sign.
	b := NewBuilder(sign.NewCatalog(map[int]string{}), Params{
		ConfidenceThreshold: 0.4,
		HoldDuration:        time.Second,
	})

	b.Observe(at(sign.SignHello, 0.9, 0))
	if _, ok := b.Observe(at(sign.SignHello, 0.9, time.Second)); ok {
		t.Fatal("a sign without a catalog entry must not commit")
	}

	// The miss still enters cooldown, so the held sign does not retry
	// every frame.
	if _, ok := b.Observe(at(sign.SignHello, 0.9, 3*time.Second)); ok {
		t.Error("expected the missing sign to stay in cooldown")
	}
}

func TestBuilder_SetParamsAppliesAtNextFrame(t *testing.T) {
	b := newTestBuilder()

	b.SetParams(Params{ConfidenceThreshold: 0.8, HoldDuration: 2 * time.Second})

	// Params() reports the values in effect, not the staged ones.
	if got := b.Params().ConfidenceThreshold; got != 0.4 {
		t.Errorf("expected staged params to be invisible, got threshold %f", got)
	}

	// The staged params land on the next observation: 0.7 is now below
	// threshold.
	b.Observe(at(sign.SignHello, 0.7, 0))
	if got := b.Params().ConfidenceThreshold; got != 0.8 {
		t.Errorf("expected threshold 0.8 after the frame boundary, got %f", got)
	}

	b.Observe(at(sign.SignHello, 0.9, time.Second))
	if _, ok := b.Observe(at(sign.SignHello, 0.9, 2200*time.Millisecond)); ok {
		t.Error("expected the longer hold duration to be in effect")
	}
	if _, ok := b.Observe(at(sign.SignHello, 0.9, 3*time.Second)); !ok {
		t.Error("expected a commit after the new hold duration elapsed")
	}
}

func TestBuilder_SetParamsRejectsInvalid(t *testing.T) {
	b := newTestBuilder()

	b.SetParams(Params{ConfidenceThreshold: 0, HoldDuration: time.Second})
	b.SetParams(Params{ConfidenceThreshold: 1.5, HoldDuration: time.Second})
	b.SetParams(Params{ConfidenceThreshold: 0.5, HoldDuration: 0})

	b.Observe(at(sign.SignHello, 0.9, 0))
	if got := b.Params(); got.ConfidenceThreshold != 0.4 || got.HoldDuration != time.Second {
		t.Errorf("invalid params must be ignored, got %+v", got)
	}
}

func TestNewBuilder_DefaultsZeroParams(t *testing.T) {
	b := NewBuilder(sign.DefaultCatalog(), Params{})

	got := b.Params()
	if got.ConfidenceThreshold != DefaultConfidenceThreshold {
		t.Errorf("expected default threshold, got %f", got.ConfidenceThreshold)
	}
	if got.HoldDuration != DefaultHoldDuration {
		t.Errorf("expected default hold duration, got %v", got.HoldDuration)
	}
}
