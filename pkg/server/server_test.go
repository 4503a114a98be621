package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formgen-visualeditor/pkg/codec"
	"github.com/goliatone/go-formgen-visualeditor/pkg/fieldtype"
	"github.com/goliatone/go-formgen-visualeditor/pkg/model"
	"github.com/goliatone/go-formgen-visualeditor/pkg/sanitize"
	"github.com/goliatone/go-formgen-visualeditor/pkg/server"
	"github.com/goliatone/go-formgen-visualeditor/pkg/store"
)

func newServer(t *testing.T, st store.Store, options ...fieldtype.Option) *server.Server {
	t.Helper()
	ve, err := fieldtype.NewVisualEditor(options...)
	require.NoError(t, err)

	srv, err := server.New(ve, st,
		server.WithField(model.Field{Key: "field_hero", Name: "hero", Label: "Hero"}),
		server.WithBuilderAssets(fstest.MapFS{
			"grapes.min.js": &fstest.MapFile{Data: []byte("window.grapesjs={};")},
		}),
	)
	require.NoError(t, err)
	return srv
}

func TestEditPageRendersField(t *testing.T) {
	st := store.NewMemory()
	_, err := st.Put(context.Background(), "post-1", "field_hero", codec.EncodeParts("<h1>Hi</h1>", "h1{}", ""))
	require.NoError(t, err)
	srv := newServer(t, st)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/post-1/field_hero", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Hero</title>")
	assert.Contains(t, body, `data-editor-id="gjs-field_hero"`)
	assert.Contains(t, body, `name="hero" id="gjs-field_hero-storage"`)
	assert.Contains(t, body, `&lt;h1&gt;Hi&lt;/h1&gt;`)
	assert.Contains(t, body, `href="/assets/grapes.min.css"`)
	assert.Contains(t, body, `src="/assets/visual-editor.js" defer`)
	assert.Contains(t, body, `action="/admin/post-1/field_hero"`)
}

func TestSaveStoresSubmittedValue(t *testing.T) {
	st := store.NewMemory()
	srv := newServer(t, st)
	submitted := codec.EncodeParts(`<p class="x">Saved</p>`, ".x{}", "body{}")

	form := url.Values{"hero": {submitted}}
	req := httptest.NewRequest(http.MethodPost, "/admin/post-1/field_hero", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/post-1/field_hero?saved=1", rec.Header().Get("Location"))

	record, err := st.Get(context.Background(), "post-1", "field_hero")
	require.NoError(t, err)
	assert.Equal(t, submitted, record.Value)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/post-1/field_hero?saved=1", nil))
	assert.Contains(t, rec.Body.String(), "Saved revision "+record.Revision)
}

func TestSaveWithSanitizer(t *testing.T) {
	st := store.NewMemory()
	srv := newServer(t, st, fieldtype.WithSanitizer(sanitize.New()))

	form := url.Values{"hero": {"<style>p{}</style><p>ok</p><script>x()</script>"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/post-1/field_hero", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.ServeHTTP(httptest.NewRecorder(), req)

	record, err := st.Get(context.Background(), "post-1", "field_hero")
	require.NoError(t, err)
	assert.Equal(t, codec.EncodeParts("<p>ok</p>", "p{}", ""), record.Value)
}

func TestViewRendersStyledMarkup(t *testing.T) {
	st := store.NewMemory()
	_, err := st.Put(context.Background(), "post-1", "field_hero", codec.EncodeParts("<h1>Hi</h1>", "h1{}", "body{}"))
	require.NoError(t, err)
	srv := newServer(t, st)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view/post-1/field_hero", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<style>h1{}body{}</style><h1>Hi</h1>")

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view/post-2/field_hero", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<style>")
}

func TestAPIExposesValue(t *testing.T) {
	st := store.NewMemory()
	stored := "<style>p{}</style><p>legacy</p>"
	record, err := st.Put(context.Background(), "post-1", "field_hero", stored)
	require.NoError(t, err)
	srv := newServer(t, st)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/post-1/field_hero", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got server.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "post-1", got.ObjectID)
	assert.Equal(t, "field_hero", got.FieldKey)
	assert.Equal(t, stored, got.Value)
	assert.Equal(t, "<style>p{}</style><p>legacy</p>", got.Rendered)
	assert.Equal(t, record.Revision, got.Revision)
}

func TestAssetsServed(t *testing.T) {
	srv := newServer(t, store.NewMemory())

	for path, want := range map[string]string{
		"/assets/visual-editor.js": "data-visual-editor",
		"/assets/grapes.min.js":    "window.grapesjs",
	} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), want, path)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewRequiresDependencies(t *testing.T) {
	ve, err := fieldtype.NewVisualEditor()
	require.NoError(t, err)

	_, err = server.New(nil, store.NewMemory())
	require.Error(t, err)
	_, err = server.New(ve, nil)
	require.Error(t, err)
}
