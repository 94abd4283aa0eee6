// SPDX-License-Identifier: EPL-2.0

package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "TTS_MODEL", "TTS_VOICE", "TTS_SAMPLE_RATE", "LISTEN_ADDR", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.GeminiAPIKey != "" {
		t.Errorf("GeminiAPIKey = %q, want empty", cfg.GeminiAPIKey)
	}
	if cfg.TTSModel != DefaultTTSModel || cfg.TTSVoice != DefaultTTSVoice {
		t.Errorf("model/voice = %q/%q", cfg.TTSModel, cfg.TTSVoice)
	}
	if cfg.SampleRate != DefaultSampleRate {
		t.Errorf("SampleRate = %d, want %d", cfg.SampleRate, DefaultSampleRate)
	}
	if cfg.ListenAddr != DefaultListenAddr || cfg.LogLevel != "info" || cfg.LogJSON {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "fallback-key")
	t.Setenv("TTS_VOICE", "Puck")
	t.Setenv("TTS_SAMPLE_RATE", "16000")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg := Load()

	if cfg.GeminiAPIKey != "fallback-key" {
		t.Errorf("GeminiAPIKey = %q, want fallback-key", cfg.GeminiAPIKey)
	}
	if cfg.TTSVoice != "Puck" {
		t.Errorf("TTSVoice = %q, want Puck", cfg.TTSVoice)
	}
	if cfg.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", cfg.SampleRate)
	}
	if !cfg.LogJSON {
		t.Error("LogJSON = false, want true")
	}
}

func TestGetEnvInt_Invalid(t *testing.T) {
	for _, v := range []string{"abc", "-5", "0"} {
		t.Setenv("TTS_SAMPLE_RATE", v)
		if got := getEnvInt("TTS_SAMPLE_RATE", 24000); got != 24000 {
			t.Errorf("getEnvInt(%q) = %d, want default 24000", v, got)
		}
	}
}
