package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var embedded embed.FS

// ErrTemplateNotFound is returned by Render when no template carries the requested name.
var ErrTemplateNotFound = errors.New("template not found")

// Renderer executes named HTML templates loaded either from the binary or from a directory.
type Renderer struct {
	dir    string
	logger *zap.Logger

	mu  sync.RWMutex
	set *template.Template
}

// New parses the templates in dir, or the embedded templates when dir is empty.
func New(dir string, logger *zap.Logger) (*Renderer, error) {
	r := &Renderer{dir: dir, logger: logger}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Dir returns the template directory, empty for embedded templates.
func (r *Renderer) Dir() string {
	return r.dir
}

// Reload re-parses the template source. The active set is left untouched on failure.
func (r *Renderer) Reload() error {
	set, err := r.parse()
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.set = set
	r.mu.Unlock()
	return nil
}

func (r *Renderer) parse() (*template.Template, error) {
	if r.dir == "" {
		set, err := template.ParseFS(embedded, "templates/*.html")
		if err != nil {
			return nil, fmt.Errorf("parse embedded templates: %w", err)
		}
		return set, nil
	}

	files, err := filepath.Glob(filepath.Join(r.dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no *.html templates in %s", r.dir)
	}
	set, err := template.ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("parse templates in %s: %w", r.dir, err)
	}
	return set, nil
}

// Render executes the named template with data and writes the result to w.
// Output is buffered so nothing reaches w when execution fails.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	r.mu.RLock()
	set := r.set
	r.mu.RUnlock()

	tpl := set.Lookup(name)
	if tpl == nil {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write template %s: %w", name, err)
	}
	return nil
}
