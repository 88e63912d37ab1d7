package templates

import (
	"embed"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed files/*.xml
var embedded embed.FS

const (
	embeddedDir = "files"
	fileExt     = ".xml"
)

// Renderer loads templates by ID. It implements scaffold.Renderer.
type Renderer struct {
	override fs.FS
	logger   *log.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithOverrideDir makes the renderer look for <id>.xml in dir before
// falling back to the built-in template. An empty dir is ignored.
func WithOverrideDir(dir string) Option {
	return func(r *Renderer) {
		if dir != "" {
			r.override = os.DirFS(dir)
		}
	}
}

// WithOverrideFS is WithOverrideDir for an arbitrary file system.
func WithOverrideFS(fsys fs.FS) Option {
	return func(r *Renderer) { r.override = fsys }
}

// WithLogger sets the logger used to report missing templates.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// New returns a Renderer. Without WithLogger, diagnostics are discarded.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	return r
}

// Render returns the template text for id, or "" when no readable template
// exists. Failures are logged, never returned.
func (r *Renderer) Render(id string) string {
	name := id + fileExt

	if r.override != nil {
		data, err := fs.ReadFile(r.override, name)
		if err == nil {
			return string(data)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Error("reading template override failed", "template", id, "err", err)
		}
	}

	data, err := fs.ReadFile(embedded, path.Join(embeddedDir, name))
	if err != nil {
		r.logger.Error("template not found", "template", id, "err", err)
		return ""
	}
	return string(data)
}

// IDs lists the built-in template IDs in sorted order.
func IDs() []string {
	entries, err := fs.ReadDir(embedded, embeddedDir)
	if err != nil {
		return nil
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(ids)
	return ids
}
