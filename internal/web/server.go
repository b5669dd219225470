package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/five82/atlas/internal/state"
)

//go:embed templates/*.html
var templateFS embed.FS

// shutdownTimeout bounds how long in-flight requests may run after the
// context passed to Listen is cancelled.
const shutdownTimeout = 5 * time.Second

// Options configures the web frontend.
type Options struct {
	Store  *state.Store
	Logger *slog.Logger
}

// Server serves the browser frontend and the JSON API over one fiber app.
type Server struct {
	app    *fiber.App
	store  *state.Store
	logger *slog.Logger
	page   *template.Template
}

// New builds the server and registers its routes.
func New(opts Options) *Server {
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{
		store:  store,
		logger: logger,
		page:   template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "atlas",
		DisableStartupMessage: true,
		UnescapePath:          true,
		ErrorHandler:          s.handleError,
	})
	s.app.Use(recover.New())
	s.app.Use(requestLogger(logger))

	s.app.Get("/", s.Index)
	s.app.Get("/chart", s.Chart)
	s.app.Get("/healthz", s.Health)

	api := s.app.Group("/api")
	api.Get("/countries", s.ListCountries)
	api.Get("/countries/:name", s.GetCountry)

	return s
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Listen(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(addr)
	}()
	s.logger.Info("web server listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("web server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	}
}

// requestLogger records every request in the structured log.
func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		// Render the error now so the logged status is the one sent.
		if err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		logger.Info("http request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start),
		)
		return nil
	}
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	s.logger.Error("request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

// pageURL builds a link back to the index page.
func pageURL(query, country string) string {
	v := url.Values{}
	if query != "" {
		v.Set("q", query)
	}
	if country != "" {
		v.Set("country", country)
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

func chartURL(country string) string {
	return "/chart?" + url.Values{"country": {country}}.Encode()
}
