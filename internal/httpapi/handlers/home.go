package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// HomeTemplate is the template rendered for the landing page.
const HomeTemplate = "index.html"

// Renderer describes the template capabilities used by page handlers.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// HomeHandler serves the landing page.
type HomeHandler struct {
	renderer Renderer
	logger   *zap.Logger
	debug    bool
	now      func() time.Time
}

// HomeOption customises a HomeHandler.
type HomeOption func(*HomeHandler)

// WithClock overrides the clock used to compute the current year.
func WithClock(now func() time.Time) HomeOption {
	return func(h *HomeHandler) {
		h.now = now
	}
}

// WithDebug exposes render errors in 500 responses.
func WithDebug(debug bool) HomeOption {
	return func(h *HomeHandler) {
		h.debug = debug
	}
}

// NewHomeHandler constructs a handler.
func NewHomeHandler(renderer Renderer, logger *zap.Logger, opts ...HomeOption) *HomeHandler {
	h := &HomeHandler{
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Home renders the landing page with the current calendar year.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"current_year": h.now().Year(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, HomeTemplate, data); err != nil {
		h.logger.Error("render home page",
			zap.String("template", HomeTemplate),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		detail := ""
		if h.debug {
			detail = err.Error()
		}
		writeError(w, http.StatusInternalServerError, detail)
	}
}
