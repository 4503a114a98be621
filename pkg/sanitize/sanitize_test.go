package sanitize_test

import (
	"context"
	"strings"
	"testing"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formgen-visualeditor/pkg/codec"
	"github.com/goliatone/go-formgen-visualeditor/pkg/fieldtype"
	"github.com/goliatone/go-formgen-visualeditor/pkg/model"
	"github.com/goliatone/go-formgen-visualeditor/pkg/sanitize"
)

var _ fieldtype.Sanitizer = (*sanitize.Sanitizer)(nil)

func TestHTMLStripsScripts(t *testing.T) {
	got := sanitize.HTML(`<div id="hero" class="row"><script>alert(1)</script><p onclick="steal()">Hi</p></div>`)

	for _, banned := range []string{"<script", "alert(1)", "onclick"} {
		if strings.Contains(got, banned) {
			t.Fatalf("expected %q removed, got %q", banned, got)
		}
	}
	for _, kept := range []string{`id="hero"`, `class="row"`, "<p>Hi</p>"} {
		if !strings.Contains(got, kept) {
			t.Fatalf("expected %q kept, got %q", kept, got)
		}
	}
}

func TestHTMLKeepsBlank(t *testing.T) {
	if got := sanitize.HTML("  "); got != "  " {
		t.Fatalf("expected blank input untouched, got %q", got)
	}
}

func TestCSS(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "p{color:red}", want: "p{color:red}"},
		{in: "p{}</style><script>x()</script>", want: `p{}<\/style><script>x()</script>`},
		{in: "a{}</STYLE >", want: `a{}<\/STYLE >`},
	}
	for _, tc := range cases {
		if got := sanitize.CSS(tc.in); got != tc.want {
			t.Errorf("CSS(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizerValue(t *testing.T) {
	s := sanitize.New()
	got := s.SanitizeValue(codec.Value{
		HTML:      `<p onmouseover="x()">Hi</p>`,
		CSS:       "p{}</style>",
		CustomCSS: "b{}</style>",
	})
	want := codec.Value{HTML: "<p>Hi</p>", CSS: `p{}<\/style>`, CustomCSS: `b{}<\/style>`}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	strict := sanitize.New(sanitize.WithPolicy(bluemonday.StrictPolicy()), sanitize.WithCSS(false))
	got = strict.SanitizeValue(codec.Value{HTML: "<p>Hi</p>", CSS: "p{}</style>"})
	if got.HTML != "Hi" || got.CSS != "p{}</style>" {
		t.Fatalf("unexpected strict result %+v", got)
	}
}

func TestSanitizerWithFieldType(t *testing.T) {
	ve, err := fieldtype.NewVisualEditor(fieldtype.WithSanitizer(sanitize.New()))
	if err != nil {
		t.Fatalf("new visual editor: %v", err)
	}

	got, err := ve.UpdateValue(context.Background(), `<style>p{}</style><p>ok</p><script>x()</script>`, model.Field{})
	if err != nil {
		t.Fatalf("update value: %v", err)
	}
	if want := codec.EncodeParts("<p>ok</p>", "p{}", ""); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
