package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// Server
	Port      int
	PublicURL string // advertised in the QR code; empty means derive from the request

	// Audio
	Audio       bool    // ambient score on/off
	MusicGain   float64 // master level when unmuted
	MP3Bitrate  string  // ffmpeg -b:a for /stream
	OpusBitrate int     // bits per second for WebRTC

	// Narration
	Narration     bool
	VoiceLang     string
	TTSCommand    string
	NarrationLead time.Duration

	// Playback
	ReplayDelay time.Duration
}

// LoadDotEnv loads variables from files (default ".env") without overriding
// ones already set. A missing file is not an error.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Printf("Ignoring %s: %v", f, err)
			continue
		}
		log.Printf("Loaded environment from %s", f)
	}
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		Port:      envInt("SHOW_PORT", 8080),
		PublicURL: envStr("SHOW_PUBLIC_URL", ""),

		Audio:       envBool("SHOW_AUDIO", true),
		MusicGain:   envFloat("SHOW_MUSIC_GAIN", 0.16),
		MP3Bitrate:  envStr("SHOW_MP3_BITRATE", "192k"),
		OpusBitrate: envInt("SHOW_OPUS_BITRATE", 128000),

		Narration:     envBool("SHOW_NARRATION", true),
		VoiceLang:     envStr("SHOW_VOICE_LANG", "hi-IN"),
		TTSCommand:    envStr("SHOW_TTS_COMMAND", "edge-tts"),
		NarrationLead: envMillis("SHOW_NARRATION_LEAD_MS", 800),

		ReplayDelay: envMillis("SHOW_REPLAY_DELAY_MS", 400),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return fallback
}

func envMillis(key string, fallback int) time.Duration {
	n := envInt(key, fallback)
	if n < 0 {
		n = fallback
	}
	return time.Duration(n) * time.Millisecond
}
