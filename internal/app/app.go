// Package app wires the capture loop, classification, sentence building
// and session state into one application.
package app

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ayusman/signspeak/internal/capture"
	"github.com/ayusman/signspeak/internal/detector"
	"github.com/ayusman/signspeak/internal/feature"
	"github.com/ayusman/signspeak/internal/sentence"
	"github.com/ayusman/signspeak/internal/session"
	"github.com/ayusman/signspeak/internal/sign"
	"github.com/ayusman/signspeak/internal/speech"
	"github.com/ayusman/signspeak/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate while no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active signing.
	ActiveFPS = 15
	// IdleTimeout is how long without motion before dropping back to
	// the idle frame rate.
	IdleTimeout = 2 * time.Second
)

// Config holds construction options for the application.
type Config struct {
	Store           *store.Store
	Session         *session.State
	Speaker         *speech.Speaker
	Catalog         *sign.Catalog
	CameraID        int
	CameraWidth     int
	CameraHeight    int
	MotionThresh    float64
	TrackerConf     float64
	StabilizerParms sentence.Params
}

// App owns the detection pipeline and exposes the session commands.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	classifier *sign.Classifier
	catalog    *sign.Catalog
	builder    *sentence.Builder
	session    *session.State
	speaker    *speech.Speaker

	mu       sync.Mutex
	stopCh   chan struct{}
	doneCh   chan struct{}
	onCommit func(word string)
}

// New creates an App. The session must be non-nil; store and speaker
// are optional (nil disables history persistence and speech).
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // 1% pixel change
	}

	catalog := config.Catalog
	if catalog == nil {
		catalog = sign.DefaultCatalog()
	}

	a := &App{
		config:     config,
		camera:     capture.NewCameraWithSize(config.CameraID, config.CameraWidth, config.CameraHeight),
		motion:     capture.NewMotionDetector(motionThreshold),
		classifier: sign.NewClassifier(),
		catalog:    catalog,
		builder:    sentence.NewBuilder(catalog, config.StabilizerParms),
		session:    config.Session,
		speaker:    config.Speaker,
	}

	trackerCfg := detector.DefaultConfig()
	if config.TrackerConf > 0 {
		trackerCfg.MinConfidence = config.TrackerConf
	}

	// Try the MediaPipe tracker first, fall back to the mock detector
	// so the web UI still comes up on machines without the model.
	if mp, err := detector.NewMediaPipeDetector(trackerCfg); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand tracking")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetDetector replaces the hand detector implementation.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera replaces the camera implementation.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.detector
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.camera
}

// Session returns the shared session state.
func (a *App) Session() *session.State {
	return a.session
}

// Catalog returns the sign catalog.
func (a *App) Catalog() *sign.Catalog {
	return a.catalog
}

// OnCommit registers a callback invoked with every committed word, for
// display surfaces like the tray. Called from the pipeline goroutine.
func (a *App) OnCommit(fn func(word string)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onCommit = fn
}

// ProcessFrame runs feature extraction, classification and the
// stabilizer for one frame's landmark set (nil means no hand was
// detected). When a word commits it is appended to the sentence,
// archived for display and announced via TTS. Returns the frame's
// detection event.
func (a *App) ProcessFrame(hand *detector.HandLandmarks) sign.Detection {
	now := time.Now()

	state, metrics, ok := feature.Extract(hand)
	if !ok {
		a.session.ClearCurrentSign()
		d := sign.None(now)
		a.builder.Observe(d)
		return d
	}

	id, conf := a.classifier.Classify(state, metrics)
	d := sign.Detection{SignID: id, Confidence: conf, At: now}

	if word, known := a.catalog.Lookup(id); known {
		a.session.SetCurrentSign(word, conf)
	} else {
		a.session.ClearCurrentSign()
	}

	if commit, committed := a.builder.Observe(d); committed {
		a.session.AppendWord(commit.Word)
		if a.speaker != nil {
			a.speaker.Announce(commit.Word)
		}
		a.mu.Lock()
		hook := a.onCommit
		a.mu.Unlock()
		if hook != nil {
			hook(commit.Word)
		}
		log.Printf("Committed word %q (sign %d)", commit.Word, commit.SignID)
	}

	return d
}

// ClearSentence empties the sentence, resets the stabilizer and
// archives the cleared sentence to history. Safe to call repeatedly.
func (a *App) ClearSentence() {
	a.builder.Reset()
	cleared := a.session.ClearSentence()

	if len(cleared) > 0 && a.config.Store != nil {
		text := strings.Join(cleared, " ")
		if _, err := a.config.Store.History().Append(text, len(cleared)); err != nil {
			log.Printf("Failed to archive sentence: %v", err)
		}
	}
}

// Backspace removes the last word from the sentence. The stabilizer is
// left untouched so an in-flight hold still commits.
func (a *App) Backspace() {
	a.session.Backspace()
}

// ToggleTTS flips the TTS flag, returning the new state, and persists
// it as the default for the next start.
func (a *App) ToggleTTS() bool {
	enabled := a.session.ToggleTTS()
	if a.config.Store != nil {
		value := "false"
		if enabled {
			value = "true"
		}
		if err := a.config.Store.Settings().Set(store.SettingTTSEnabled, value); err != nil {
			log.Printf("Failed to persist tts setting: %v", err)
		}
	}
	return enabled
}

// StabilizerParams returns the parameters currently in effect.
func (a *App) StabilizerParams() sentence.Params {
	return a.builder.Params()
}

// SetStabilizerParams stages new stabilizer parameters (applied at the
// next frame boundary) and persists them.
func (a *App) SetStabilizerParams(p sentence.Params) {
	a.builder.SetParams(p)

	if a.config.Store != nil {
		settings := a.config.Store.Settings()
		if err := settings.SetFloat(store.SettingConfidenceThreshold, p.ConfidenceThreshold); err != nil {
			log.Printf("Failed to persist confidence threshold: %v", err)
		}
		if err := settings.SetFloat(store.SettingHoldDurationMs, float64(p.HoldDuration.Milliseconds())); err != nil {
			log.Printf("Failed to persist hold duration: %v", err)
		}
	}
}

// Start opens the camera and begins the detection pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.session.SetCameraConnected(true)

	a.camera.SetFPS(IdleFPS)

	a.stopCh = make(chan struct{})
	a.doneCh = make(chan struct{})
	go a.runPipeline(a.stopCh, a.doneCh)

	log.Println("Detection pipeline started")
	return nil
}

// Stop halts the detection pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()

	if a.stopCh == nil {
		a.mu.Unlock()
		return
	}

	close(a.stopCh)
	a.stopCh = nil
	done := a.doneCh
	a.doneCh = nil
	a.mu.Unlock()

	<-done

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	a.session.SetCameraConnected(false)

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Detection pipeline stopped")
}
