package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-formgen-visualeditor/pkg/model"
	"github.com/goliatone/go-formgen-visualeditor/pkg/store"
)

const maxBodySize = 10 << 20

// APIResponse is the JSON body of GET /api/{object}/{field}.
type APIResponse struct {
	ObjectID  string    `json:"object_id"`
	FieldKey  string    `json:"field_key"`
	Value     string    `json:"value"`
	Rendered  string    `json:"rendered"`
	Revision  string    `json:"revision,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (s *Server) load(r *http.Request) (model.Field, store.Record, error) {
	objectID := chi.URLParam(r, "object")
	field := s.field(chi.URLParam(r, "field"))

	record, err := s.store.Get(r.Context(), objectID, field.Key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		record = store.Record{ObjectID: objectID, FieldKey: field.Key}
	case err != nil:
		return field, record, err
	}
	field.Value = record.Value
	return field, record, nil
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	field, record, err := s.load(r)
	if err != nil {
		s.fail(w, "load", err)
		return
	}
	markup, err := s.fieldType.RenderField(r.Context(), field)
	if err != nil {
		s.fail(w, "render_field", err)
		return
	}

	assets := s.fieldType.Assets()
	stylesheets := make([]map[string]any, 0, len(assets.Stylesheets))
	for _, sheet := range assets.Stylesheets {
		stylesheets = append(stylesheets, map[string]any{"handle": sheet.Handle, "href": sheet.Href})
	}
	scripts := make([]map[string]any, 0, len(assets.Scripts))
	for _, script := range assets.Scripts {
		scripts = append(scripts, map[string]any{
			"handle": script.Handle,
			"src":    script.Src,
			"inline": script.Inline,
			"defer":  script.Defer,
			"module": script.Module,
		})
	}

	s.renderPage(w, "templates/admin", map[string]any{
		"title":       field.Label,
		"object_id":   record.ObjectID,
		"action":      r.URL.Path,
		"view_url":    "/view/" + record.ObjectID + "/" + field.Key,
		"field":       markup,
		"saved":       r.URL.Query().Get("saved") != "",
		"revision":    record.Revision,
		"stylesheets": stylesheets,
		"scripts":     scripts,
	})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	objectID := chi.URLParam(r, "object")
	field := s.field(chi.URLParam(r, "field"))

	value, err := s.fieldType.UpdateValue(r.Context(), r.PostForm.Get(field.InputName()), field)
	if err != nil {
		s.fail(w, "update_value", err)
		return
	}
	record, err := s.store.Put(r.Context(), objectID, field.Key, value)
	if err != nil {
		s.fail(w, "put", err)
		return
	}
	s.logger.Printf("component=server action=save object=%s field=%s revision=%s", record.ObjectID, record.FieldKey, record.Revision)

	http.Redirect(w, r, r.URL.Path+"?saved=1", http.StatusSeeOther)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	field, record, err := s.load(r)
	if err != nil {
		s.fail(w, "load", err)
		return
	}
	rendered, err := s.fieldType.FormatValue(r.Context(), record.Value, field)
	if err != nil {
		s.fail(w, "format_value", err)
		return
	}
	s.renderPage(w, "templates/view", map[string]any{
		"title":   field.Label,
		"content": rendered,
	})
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	if !s.fieldType.ShowInREST() {
		http.NotFound(w, r)
		return
	}
	field, record, err := s.load(r)
	if err != nil {
		s.fail(w, "load", err)
		return
	}
	rendered, err := s.fieldType.FormatValue(r.Context(), record.Value, field)
	if err != nil {
		s.fail(w, "format_value", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(APIResponse{
		ObjectID:  record.ObjectID,
		FieldKey:  field.Key,
		Value:     record.Value,
		Rendered:  rendered,
		Revision:  record.Revision,
		UpdatedAt: record.UpdatedAt,
	}); err != nil {
		s.logger.Printf("component=server action=encode_api error=%q", err)
	}
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data map[string]any) {
	html, err := s.pages.RenderTemplate(name, data)
	if err != nil {
		s.fail(w, "render_page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func (s *Server) fail(w http.ResponseWriter, action string, err error) {
	s.logger.Printf("component=server action=%s error=%q", action, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
