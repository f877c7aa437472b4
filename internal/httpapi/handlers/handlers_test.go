package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/bengobox/landing-service/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type renderFunc func(w io.Writer, name string, data any) error

func (f renderFunc) Render(w io.Writer, name string, data any) error {
	return f(w, name, data)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestHomePassesCurrentYear(t *testing.T) {
	var gotName string
	var gotData any
	renderer := renderFunc(func(w io.Writer, name string, data any) error {
		gotName, gotData = name, data
		_, err := fmt.Fprint(w, "ok")
		return err
	})
	fixed := time.Date(2031, time.March, 4, 0, 0, 0, 0, time.UTC)
	h := NewHomeHandler(renderer, zaptest.NewLogger(t), WithClock(func() time.Time { return fixed }))

	rec := httptest.NewRecorder()
	h.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "index.html", gotName)
	assert.Equal(t, map[string]any{"current_year": 2031}, gotData)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestHomeRendersEmbeddedTemplate(t *testing.T) {
	renderer, err := view.New("", zaptest.NewLogger(t))
	require.NoError(t, err)
	h := NewHomeHandler(renderer, zaptest.NewLogger(t))

	rec := httptest.NewRecorder()
	h.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), strconv.Itoa(time.Now().Year()))
}

func TestHomeRenderFailure(t *testing.T) {
	failing := renderFunc(func(io.Writer, string, any) error {
		return fmt.Errorf("%w: index.html", view.ErrTemplateNotFound)
	})

	t.Run("generic body", func(t *testing.T) {
		h := NewHomeHandler(failing, zaptest.NewLogger(t))
		rec := httptest.NewRecorder()
		h.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", rec.Body.String())
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	})

	t.Run("debug body", func(t *testing.T) {
		h := NewHomeHandler(failing, zaptest.NewLogger(t), WithDebug(true))
		rec := httptest.NewRecorder()
		h.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "template not found: index.html")
	})

	t.Run("execution error", func(t *testing.T) {
		h := NewHomeHandler(renderFunc(func(io.Writer, string, any) error {
			return errors.New("boom")
		}), zaptest.NewLogger(t))
		rec := httptest.NewRecorder()
		h.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})
}
