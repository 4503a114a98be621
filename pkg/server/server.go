// Package server is a small host for the visual editor field: an admin page
// that edits one field of one object, a public page that displays it and a
// JSON endpoint exposing the stored value.
package server

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-formgen-visualeditor/pkg/fieldtype"
	"github.com/goliatone/go-formgen-visualeditor/pkg/model"
	"github.com/goliatone/go-formgen-visualeditor/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formgen-visualeditor/pkg/store"
)

//go:embed templates/*.tpl
var pageTemplates embed.FS

// Option configures a Server.
type Option func(*Server)

// WithField registers a field definition. Requests for field keys without a
// definition get a field with default settings.
func WithField(field model.Field) Option {
	return func(s *Server) {
		if key := strings.TrimSpace(field.Key); key != "" {
			s.fields[key] = field
		}
	}
}

// WithBuilderAssets serves the page builder library files (grapes.min.js,
// grapes.min.css) under /assets next to the field bootstrap.
func WithBuilderAssets(files fs.FS) Option {
	return func(s *Server) {
		if files != nil {
			s.builderAssets = files
		}
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Server wires a field type and a store to HTTP routes.
type Server struct {
	router        chi.Router
	fieldType     fieldtype.FieldType
	store         store.Store
	pages         *gotemplate.Engine
	fields        map[string]model.Field
	builderAssets fs.FS
	logger        *log.Logger
}

// New builds a Server with all routes configured.
func New(ft fieldtype.FieldType, st store.Store, options ...Option) (*Server, error) {
	if ft == nil {
		return nil, fmt.Errorf("server: field type is required")
	}
	if st == nil {
		return nil, fmt.Errorf("server: store is required")
	}

	pages, err := gotemplate.New(gotemplate.WithFS(pageTemplates))
	if err != nil {
		return nil, fmt.Errorf("server: page templates: %w", err)
	}

	s := &Server{
		fieldType: ft,
		store:     st,
		pages:     pages,
		fields:    make(map[string]model.Field),
		logger:    log.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	r := chi.NewRouter()

	assets := overlayFS{fieldtype.AssetsFS()}
	if s.builderAssets != nil {
		assets = append(assets, s.builderAssets)
	}
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assets))))

	r.Get("/admin/{object}/{field}", s.handleEdit)
	r.Post("/admin/{object}/{field}", s.handleSave)
	r.Get("/view/{object}/{field}", s.handleView)
	r.Get("/api/{object}/{field}", s.handleAPI)

	s.router = r
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) field(key string) model.Field {
	key = strings.TrimSpace(key)
	field, ok := s.fields[key]
	if !ok {
		field = model.Field{Key: key, Name: key, Label: key}
	}
	return field.WithDefaults(s.fieldType.Defaults())
}

// overlayFS opens a name from the first file system that has it.
type overlayFS []fs.FS

func (o overlayFS) Open(name string) (fs.File, error) {
	var firstErr error
	for _, files := range o {
		f, err := files.Open(name)
		if err == nil {
			return f, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return nil, firstErr
}
