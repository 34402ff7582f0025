// Package config loads the application configuration from a YAML file
// with environment-variable overrides for the knobs commonly set in
// container deployments.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// HTTPConfig configures the web server bind address.
type HTTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns the host:port bind address.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CameraConfig selects the capture device and frame size.
type CameraConfig struct {
	Device int `yaml:"device"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DetectionConfig holds tracker and stabilizer tuning.
type DetectionConfig struct {
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
	HoldDurationMs      int     `yaml:"hold_duration_ms"`
	MinTrackerConf      float64 `yaml:"min_tracker_confidence"`
	MotionThreshold     float64 `yaml:"motion_threshold"`
}

// HoldDuration returns the hold duration as a time.Duration.
func (c DetectionConfig) HoldDuration() time.Duration {
	return time.Duration(c.HoldDurationMs) * time.Millisecond
}

// TTSConfig configures speech synthesis.
type TTSConfig struct {
	Enabled bool   `yaml:"enabled"`
	Command string `yaml:"command"`
}

// Config is the full application configuration.
type Config struct {
	HTTP       HTTPConfig      `yaml:"http"`
	Camera     CameraConfig    `yaml:"camera"`
	Detection  DetectionConfig `yaml:"detection"`
	TTS        TTSConfig       `yaml:"tts"`
	StorePath  string          `yaml:"store_path"`
	StaticDir  string          `yaml:"static_dir"`
	Dictionary string          `yaml:"dictionary"` // optional sign dictionary JSON
	Tray       bool            `yaml:"tray"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Camera: CameraConfig{
			Device: 0,
			Width:  640,
			Height: 480,
		},
		Detection: DetectionConfig{
			ConfidenceThreshold: 0.4,
			HoldDurationMs:      1000,
			MinTrackerConf:      0.7,
			MotionThreshold:     1.0,
		},
		TTS: TTSConfig{
			Enabled: true,
			Command: defaultTTSCommand(),
		},
	}
}

// Load reads the configuration file at path, falling back to defaults
// when path is empty or the file does not exist, then applies
// environment overrides. A present but malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnvOverrides maps deployment environment variables onto the
// config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HOST"); v != "" {
		cfg.HTTP.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Port = port
		}
	}
	if v := os.Getenv("CAMERA_INDEX"); v != "" {
		if device, err := strconv.Atoi(v); err == nil {
			cfg.Camera.Device = device
		}
	}
	if v := os.Getenv("TTS_ENABLED"); v != "" {
		cfg.TTS.Enabled = strings.EqualFold(v, "true") || v == "1"
	}
}

func (c Config) validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTP.Port)
	}
	if c.Detection.ConfidenceThreshold <= 0 || c.Detection.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold must be in (0,1], got %g", c.Detection.ConfidenceThreshold)
	}
	if c.Detection.HoldDurationMs <= 0 {
		return fmt.Errorf("hold_duration_ms must be positive, got %d", c.Detection.HoldDurationMs)
	}
	return nil
}

// defaultTTSCommand picks a speech command likely to exist on the host.
func defaultTTSCommand() string {
	for _, candidate := range []string{"say", "espeak", "spd-say"} {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
