// SPDX-License-Identifier: EPL-2.0

// Package server exposes poem audio over HTTP for the greeting page.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ik5/poemaudio/wavurl"
)

// PoemAudio yields the poem data URL, or ok == false when none is available.
type PoemAudio interface {
	Get(ctx context.Context) (url string, ok bool)
}

// AudioResponse is returned by both audio endpoints. AudioURL is null when
// there is no audio.
type AudioResponse struct {
	AudioURL *string `json:"audioUrl"`
}

// WAVRequest is the body of POST /api/wav.
type WAVRequest struct {
	PCM        string `json:"pcm"`
	SampleRate int    `json:"sampleRate"`
}

type Server struct {
	app  *fiber.App
	poem PoemAudio
	log  *slog.Logger
}

func New(poem PoemAudio, log *slog.Logger) *Server {
	s := &Server{
		poem: poem,
		log:  log,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "poemaudio",
		BodyLimit:             32 << 20,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(recover.New())
	s.app.Use(cors.New())
	s.app.Use(s.logRequests)

	s.app.Get("/healthz", s.healthz)
	s.app.Get("/api/poem/audio", s.poemAudio)
	s.app.Post("/api/wav", s.wrapPCM)

	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen(addr string) error {
	s.log.Info("listening", "addr", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	// the error handler has not written the response yet
	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
	}

	s.log.Info("request",
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"elapsed", time.Since(start),
	)

	return err
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else {
		s.log.Error("unhandled error", "path", c.Path(), "error", err)
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func (s *Server) healthz(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func (s *Server) poemAudio(c *fiber.Ctx) error {
	url, ok := s.poem.Get(c.UserContext())
	if !ok {
		return c.JSON(AudioResponse{})
	}

	return c.JSON(AudioResponse{AudioURL: &url})
}

func (s *Server) wrapPCM(c *fiber.Ctx) error {
	var req WAVRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}

	if err := wavurl.Validate(nil, req.SampleRate); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	url, err := wavurl.FromBase64PCM(req.PCM, req.SampleRate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(AudioResponse{AudioURL: &url})
}
