package speech

import (
	"errors"
	"testing"

	"github.com/ayusman/signspeak/internal/session"
)

func TestSpeaker_AnnouncesWhenEnabled(t *testing.T) {
	engine := NewMockEngine()
	sess := session.NewState(true)

	s := NewSpeaker(engine, sess)
	s.Announce("Hello")
	s.Announce("Water")
	s.Close()

	spoken := engine.Spoken()
	if len(spoken) != 2 {
		t.Fatalf("expected 2 utterances, got %d", len(spoken))
	}
	if spoken[0] != "Hello" || spoken[1] != "Water" {
		t.Errorf("unexpected utterances %v", spoken)
	}
}

func TestSpeaker_GatedByTTSFlag(t *testing.T) {
	engine := NewMockEngine()
	sess := session.NewState(false)

	s := NewSpeaker(engine, sess)
	s.Announce("Hello")

	sess.ToggleTTS()
	s.Announce("Water")
	s.Close()

	spoken := engine.Spoken()
	if len(spoken) != 1 {
		t.Fatalf("expected 1 utterance, got %d", len(spoken))
	}
	if spoken[0] != "Water" {
		t.Errorf("expected %q, got %q", "Water", spoken[0])
	}
}

func TestSpeaker_IgnoresEmptyWord(t *testing.T) {
	engine := NewMockEngine()
	sess := session.NewState(true)

	s := NewSpeaker(engine, sess)
	s.Announce("")
	s.Close()

	if spoken := engine.Spoken(); len(spoken) != 0 {
		t.Errorf("expected no utterances, got %v", spoken)
	}
}

func TestSpeaker_SurvivesEngineError(t *testing.T) {
	engine := NewMockEngine()
	engine.SetError(errors.New("audio device busy"))
	sess := session.NewState(true)

	// The failing utterance is attempted and dropped.
	s := NewSpeaker(engine, sess)
	s.Announce("Hello")
	s.Close()
	if spoken := engine.Spoken(); len(spoken) != 0 {
		t.Fatalf("expected no utterances after a failure, got %v", spoken)
	}

	// A fresh dispatch after the engine recovers still goes through.
	engine.SetError(nil)
	s = NewSpeaker(engine, sess)
	s.Announce("Water")
	s.Close()

	spoken := engine.Spoken()
	if len(spoken) != 1 || spoken[0] != "Water" {
		t.Errorf("expected only the recovered utterance, got %v", spoken)
	}
}

func TestSpeaker_CloseIsIdempotent(t *testing.T) {
	s := NewSpeaker(NewMockEngine(), session.NewState(true))
	s.Close()
	s.Close()
}

func TestNewExecEngine(t *testing.T) {
	if _, err := NewExecEngine("espeak -v en -s 150"); err != nil {
		t.Errorf("expected a valid engine, got %v", err)
	}
	if _, err := NewExecEngine(""); err == nil {
		t.Error("expected an error for an empty command")
	}
	if _, err := NewExecEngine(`say "unterminated`); err == nil {
		t.Error("expected an error for an unbalanced quote")
	}
}
