package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/ayusman/signspeak/internal/app"
	"github.com/ayusman/signspeak/internal/config"
	"github.com/ayusman/signspeak/internal/sentence"
	"github.com/ayusman/signspeak/internal/server"
	"github.com/ayusman/signspeak/internal/session"
	"github.com/ayusman/signspeak/internal/sign"
	"github.com/ayusman/signspeak/internal/speech"
	"github.com/ayusman/signspeak/internal/store"
	"github.com/ayusman/signspeak/internal/tray"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	fmt.Println("SignSpeak - Sign Language Recognition")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	st, err := openStore(cfg.StorePath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	catalog, err := loadCatalog(st, cfg.Dictionary)
	if err != nil {
		log.Fatalf("Failed to load sign vocabulary: %v", err)
	}
	log.Printf("Vocabulary loaded: %d signs", catalog.Len())

	sess := session.NewState(ttsEnabled(st, cfg.TTS.Enabled))

	var speaker *speech.Speaker
	if cfg.TTS.Command != "" {
		engine, err := speech.NewExecEngine(cfg.TTS.Command)
		if err != nil {
			log.Fatalf("Invalid tts command: %v", err)
		}
		speaker = speech.NewSpeaker(engine, sess)
		defer speaker.Close()
	} else {
		log.Println("No TTS command available, speech disabled")
	}

	a := app.New(app.Config{
		Store:           st,
		Session:         sess,
		Speaker:         speaker,
		Catalog:         catalog,
		CameraID:        cfg.Camera.Device,
		CameraWidth:     cfg.Camera.Width,
		CameraHeight:    cfg.Camera.Height,
		MotionThresh:    cfg.Detection.MotionThreshold,
		TrackerConf:     cfg.Detection.MinTrackerConf,
		StabilizerParms: stabilizerParams(st, cfg.Detection),
	})

	if err := a.Start(); err != nil {
		// The web UI still works for reviewing history without a camera.
		log.Printf("Camera unavailable (%v), running without capture", err)
	}
	defer a.Stop()

	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = findWebDir()
	}
	if staticDir != "" {
		fmt.Printf("Serving static files from: %s\n", staticDir)
	}

	srv := server.New(server.Config{
		StaticDir: staticDir,
		Session:   sess,
		App:       a,
		Camera:    a.Camera(),
		Store:     st,
	})
	defer srv.Close()

	addr := cfg.HTTP.Addr()
	fmt.Printf("Starting server on %s\n", addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(addr)
	}()

	if cfg.Tray {
		runTray(a, sess, cfg.HTTP.Port)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received %v, shutting down", sig)
	case err := <-errCh:
		log.Fatalf("Server failed: %v", err)
	}
}

// openStore opens the SQLite store, defaulting to ~/.signspeak/signspeak.db.
func openStore(path string) (*store.Store, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir := filepath.Join(homeDir, ".signspeak")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "signspeak.db")
	}
	return store.New(path)
}

// loadCatalog seeds the store's vocabulary on first run and builds the
// catalog from the persisted rows, so edits made directly in the
// database survive restarts. A dictionary file overrides the built-in
// seed words.
func loadCatalog(st *store.Store, dictionary string) (*sign.Catalog, error) {
	seed := sign.DefaultWords()
	if dictionary != "" {
		loaded, err := sign.LoadCatalog(dictionary)
		if err != nil {
			return nil, err
		}
		seed = make(map[int]string, loaded.Len())
		for _, id := range loaded.IDs() {
			word, _ := loaded.Lookup(id)
			seed[id] = word
		}
	}

	if err := st.Signs().Seed(seed); err != nil {
		return nil, err
	}

	words, err := st.Signs().All()
	if err != nil {
		return nil, err
	}
	return sign.NewCatalog(words), nil
}

// ttsEnabled resolves the initial speech state: a persisted setting wins
// over the config file default.
func ttsEnabled(st *store.Store, fallback bool) bool {
	raw, err := st.Settings().Get(store.SettingTTSEnabled)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("Failed to read tts setting: %v", err)
		}
		return fallback
	}
	return strings.EqualFold(raw, "true")
}

// stabilizerParams resolves the stabilizer tuning: persisted settings
// win over the config file.
func stabilizerParams(st *store.Store, d config.DetectionConfig) sentence.Params {
	settings := st.Settings()
	threshold := settings.GetFloat(store.SettingConfidenceThreshold, d.ConfidenceThreshold)
	holdMs := settings.GetFloat(store.SettingHoldDurationMs, float64(d.HoldDurationMs))

	return sentence.Params{
		ConfidenceThreshold: threshold,
		HoldDuration:        time.Duration(holdMs) * time.Millisecond,
	}
}

// runTray blocks on the system tray event loop. Systray must own the
// main thread on macOS.
func runTray(a *app.App, sess *session.State, port int) {
	t := tray.New(sess.TTSEnabled())

	a.OnCommit(t.SetLastWord)

	t.OnToggleTTS(func(bool) {
		t.SetTTSEnabled(a.ToggleTTS())
	})
	t.OnOpenUI(func() {
		openBrowser(fmt.Sprintf("http://localhost:%d", port))
	})
	t.OnQuit(func() {
		log.Println("Quit requested from tray")
	})

	t.Run()
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.signspeak/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".signspeak", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
