// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultTTSModel   = "gemini-2.5-flash-preview-tts"
	DefaultTTSVoice   = "Kore"
	DefaultSampleRate = 24000
	DefaultListenAddr = ":8080"
)

// Config holds settings read from the environment (and an optional .env file).
type Config struct {
	GeminiAPIKey string
	TTSModel     string
	TTSVoice     string
	// SampleRate is assumed when the TTS response does not state one.
	SampleRate int
	ListenAddr string
	LogLevel   string
	LogJSON    bool
}

// Load reads .env when present, then the environment, applying defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		GeminiAPIKey: firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY"),
		TTSModel:     getEnv("TTS_MODEL", DefaultTTSModel),
		TTSVoice:     getEnv("TTS_VOICE", DefaultTTSVoice),
		SampleRate:   getEnvInt("TTS_SAMPLE_RATE", DefaultSampleRate),
		ListenAddr:   getEnv("LISTEN_ADDR", DefaultListenAddr),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogJSON:      strings.EqualFold(getEnv("LOG_FORMAT", "text"), "json"),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := getEnv(k, ""); v != "" {
			return v
		}
	}
	return ""
}

func getEnvInt(key string, def int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
