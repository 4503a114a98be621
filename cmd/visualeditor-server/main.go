package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-formgen-visualeditor/pkg/editor"
	"github.com/goliatone/go-formgen-visualeditor/pkg/fieldtype"
	"github.com/goliatone/go-formgen-visualeditor/pkg/model"
	"github.com/goliatone/go-formgen-visualeditor/pkg/sanitize"
	"github.com/goliatone/go-formgen-visualeditor/pkg/server"
	"github.com/goliatone/go-formgen-visualeditor/pkg/store"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", "", "sqlite database path (in-memory store if empty)")
	vendorDir := flag.String("vendor", "", "directory holding grapes.min.js and grapes.min.css")
	configPath := flag.String("config", "", "editor configuration file (JSON or YAML)")
	fieldKey := flag.String("field", "field_content", "field key of the demo field")
	height := flag.Int("height", model.DefaultEditorHeight, "editor height in pixels")
	sanitizeValues := flag.Bool("sanitize", false, "sanitise submitted values")
	flag.Parse()

	var st store.Store = store.NewMemory()
	if *dbPath != "" {
		db, err := store.OpenSQLite(*dbPath)
		if err != nil {
			log.Fatalf("component=server action=open_store error=%q", err)
		}
		st = db
	}
	defer st.Close()

	options := []fieldtype.Option{}
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("component=server action=read_config error=%q", err)
		}
		cfg, err := editor.Load(data, *configPath)
		if err != nil {
			log.Fatalf("component=server action=load_config error=%q", err)
		}
		options = append(options, fieldtype.WithEditorConfig(cfg))
	}
	if *sanitizeValues {
		options = append(options, fieldtype.WithSanitizer(sanitize.New()))
	}

	ve, err := fieldtype.NewVisualEditor(options...)
	if err != nil {
		log.Fatalf("component=server action=init_field error=%q", err)
	}

	settings := model.Settings{EditorHeight: *height}
	if err := settings.Validate(); err != nil {
		log.Fatalf("component=server action=validate_settings error=%q", err)
	}

	serverOptions := []server.Option{
		server.WithField(model.Field{
			Key:      strings.TrimSpace(*fieldKey),
			Name:     "content",
			Label:    "Content",
			Settings: settings,
		}),
	}
	if *vendorDir != "" {
		serverOptions = append(serverOptions, server.WithBuilderAssets(os.DirFS(*vendorDir)))
	}

	srv, err := server.New(ve, st, serverOptions...)
	if err != nil {
		log.Fatalf("component=server action=init error=%q", err)
	}

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("component=server action=listen addr=%s edit=/admin/demo/%s", *addr, *fieldKey)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("component=server action=serve error=%q", err)
	}
}
