package config

import (
	"strconv"
)

// Environment variable names recognised by ApplyEnv
const (
	EnvAudioEnabled = "AETHER_AUDIO_ENABLED"
	EnvMasterVolume = "AETHER_MASTER_VOLUME" // 0-100
	EnvTextureDir   = "AETHER_TEXTURE_DIR"
	EnvFPS          = "AETHER_FPS"
)

// ApplyEnv overrides configuration from environment variables
// Malformed values are ignored and the previous value kept
func ApplyEnv(cfg *Config, getenv func(string) (string, bool)) {
	if v, ok := getenv(EnvAudioEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		}
	}

	if v, ok := getenv(EnvMasterVolume); ok {
		if n, err := strconv.Atoi(v); err == nil {
			vol := float64(n) / 100.0
			if vol < 0 {
				vol = 0
			}
			if vol > 1 {
				vol = 1
			}
			cfg.Audio.MasterVolume = vol
		}
	}

	if v, ok := getenv(EnvTextureDir); ok && v != "" {
		cfg.Textures.Dir = v
	}

	if v, ok := getenv(EnvFPS); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Loop.FPS = n
		}
	}
}
