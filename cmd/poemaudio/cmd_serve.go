// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/poemaudio"
	"github.com/ik5/poemaudio/internal/logger"
	"github.com/ik5/poemaudio/internal/server"
	"github.com/ik5/poemaudio/tts/gemini"
)

var (
	serveAddr   string
	serveWarmup bool
)

func serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve poem audio over HTTP for the greeting page",
		Long: `Start an HTTP server with:
  GET  /healthz          liveness
  GET  /api/poem/audio   {"audioUrl": "data:audio/wav;base64,..."} or {"audioUrl": null}
  POST /api/wav          {"pcm": "<base64>", "sampleRate": 24000} -> {"audioUrl": ...}

The poem is synthesized at most once per process.`,
		Example: `  poemaudio serve
  poemaudio serve -a :9000 --warmup`,
		RunE: runServe,
	}

	cmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (default from LISTEN_ADDR)")
	cmd.Flags().BoolVar(&serveWarmup, "warmup", false, "Synthesize the poem before accepting requests")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := cfg.ListenAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	var poem server.PoemAudio = noPoemAudio{}

	synth, err := gemini.New(ctx, cfg.GeminiAPIKey, gemini.Options{
		Model:      cfg.TTSModel,
		Voice:      cfg.TTSVoice,
		SampleRate: cfg.SampleRate,
	})
	switch {
	case errors.Is(err, gemini.ErrMissingAPIKey):
		logger.Log.Warn("no Gemini API key configured, poem audio disabled")
	case err != nil:
		return err
	default:
		cache := poemaudio.NewCache(synth)
		if serveWarmup {
			if _, ok := cache.Get(ctx); !ok {
				logger.Log.Warn("poem audio unavailable, serving without it")
			}
		}
		poem = cache
	}

	srv := server.New(poem, logger.Log)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Listen(addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// noPoemAudio reports absence, which the page treats as "play nothing".
type noPoemAudio struct{}

func (noPoemAudio) Get(context.Context) (string, bool) { return "", false }
