// SPDX-License-Identifier: EPL-2.0

package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"strconv"
	"time"

	"google.golang.org/genai"

	"github.com/ik5/poemaudio/internal/logger"
	"github.com/ik5/poemaudio/tts"
)

const defaultTimeout = 90 * time.Second

// ErrMissingAPIKey is returned by New when no key is configured.
var ErrMissingAPIKey = errors.New("gemini api key is required")

// contentGenerator is the part of *genai.Models used here, split out for tests.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Options configure a Synthesizer.
type Options struct {
	Model string
	Voice string
	// SampleRate is used when the response MIME type carries no rate.
	SampleRate int
	Timeout    time.Duration
	Logger     *slog.Logger
}

// Synthesizer implements tts.Synthesizer with Gemini's native audio output.
type Synthesizer struct {
	models     contentGenerator
	model      string
	voice      string
	sampleRate int
	timeout    time.Duration
	log        *slog.Logger
}

// New creates a Gemini API client and wraps it.
func New(ctx context.Context, apiKey string, opts Options) (*Synthesizer, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return newSynthesizer(client.Models, opts), nil
}

func newSynthesizer(models contentGenerator, opts Options) *Synthesizer {
	s := &Synthesizer{
		models:     models,
		model:      opts.Model,
		voice:      opts.Voice,
		sampleRate: opts.SampleRate,
		timeout:    opts.Timeout,
		log:        opts.Logger,
	}

	if s.model == "" {
		s.model = "gemini-2.5-flash-preview-tts"
	}
	if s.voice == "" {
		s.voice = "Kore"
	}
	if s.sampleRate <= 0 {
		s.sampleRate = 24000
	}
	if s.timeout <= 0 {
		s.timeout = defaultTimeout
	}
	if s.log == nil {
		s.log = logger.Log
	}

	return s
}

// Synthesize asks the model to read text aloud and returns the raw PCM answer.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (*tts.Speech, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.voice},
			},
		},
	}

	s.log.DebugContext(ctx, "requesting speech", "model", s.model, "voice", s.voice, "chars", len([]rune(text)))
	start := time.Now()

	resp, err := s.models.GenerateContent(ctx, s.model, genai.Text(text), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	blob := firstInlineData(resp)
	if blob == nil || len(blob.Data) == 0 {
		return nil, tts.ErrNoAudio
	}

	speech := &tts.Speech{
		PCM:        blob.Data,
		SampleRate: sampleRateOf(blob.MIMEType, s.sampleRate),
	}

	s.log.InfoContext(ctx, "speech received",
		"bytes", len(speech.PCM),
		"sample_rate", speech.SampleRate,
		"mime", blob.MIMEType,
		"elapsed", time.Since(start),
	)

	return speech, nil
}

func firstInlineData(resp *genai.GenerateContentResponse) *genai.Blob {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}

	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil {
		return nil
	}

	return content.Parts[0].InlineData
}

// sampleRateOf reads the rate parameter of e.g. "audio/L16;codec=pcm;rate=24000".
func sampleRateOf(mimeType string, def int) int {
	_, params, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return def
	}

	rate, err := strconv.Atoi(params["rate"])
	if err != nil || rate <= 0 {
		return def
	}

	return rate
}
