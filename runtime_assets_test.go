package visualeditor

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-formgen-visualeditor/pkg/fieldtype"
)

func TestRuntimeAssetsFSContainsBootstrap(t *testing.T) {
	data, err := fs.ReadFile(RuntimeAssetsFS(), "visual-editor.js")
	if err != nil {
		t.Fatalf("expected bootstrap to be readable: %v", err)
	}
	for _, want := range []string{"grapesjs.init", "customCss", "-storage", "onFieldReady", "onFieldAppended", "onFieldRemoved"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("expected bootstrap to reference %q", want)
		}
	}
	if _, err := fs.ReadFile(RuntimeAssetsFS(), "visual-editor.css"); err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
}

func TestEmbeddedTemplatesContainField(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "templates/visual_editor.tpl"); err != nil {
		t.Fatalf("expected field template: %v", err)
	}
}

func TestRegister(t *testing.T) {
	registry := fieldtype.NewRegistry()
	ve, err := Register(registry, fieldtype.WithName("page_builder"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := registry.Lookup("page_builder")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != ve {
		t.Fatalf("expected registered instance")
	}
}

func TestDecodeRenderShortcuts(t *testing.T) {
	raw := Encode(Value{HTML: "<p>x</p>", CSS: "p{}"})
	if Decode(raw).HTML != "<p>x</p>" {
		t.Fatalf("unexpected decode of %q", raw)
	}
	if got := Render(raw); got != "<style>p{}</style><p>x</p>" {
		t.Fatalf("unexpected render %q", got)
	}
}
