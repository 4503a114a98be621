package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formgen-visualeditor/internal/migrate"
	"github.com/goliatone/go-formgen-visualeditor/pkg/codec"
	"github.com/goliatone/go-formgen-visualeditor/pkg/editor"
	"github.com/goliatone/go-formgen-visualeditor/pkg/model"
	"github.com/goliatone/go-formgen-visualeditor/pkg/store"
)

const usage = `usage: visualeditor-cli <command> [flags]

commands:
  decode   print the {html, css, customCss} parts of a stored value
  encode   build a stored value from html/css files
  render   print the display markup of a stored value
  init     print the editor init options for a field
  migrate  rewrite legacy values in a sqlite store as envelopes
`

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	args := os.Args[2:]
	switch os.Args[1] {
	case "decode":
		err = runDecode(args)
	case "encode":
		err = runEncode(args)
	case "render":
		err = runRender(args)
	case "init":
		err = runInit(args)
	case "migrate":
		err = runMigrate(context.Background(), args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	in := fs.String("in", "", "input file (stdin if empty)")
	fs.Parse(args)

	raw, err := readInput(*in)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(codec.Decode(raw))
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	htmlPath := fs.String("html", "", "HTML file")
	cssPath := fs.String("css", "", "generated CSS file")
	customPath := fs.String("custom-css", "", "custom CSS file")
	fs.Parse(args)

	if *htmlPath == "" {
		return errors.New("-html is required")
	}
	html, err := readFile(*htmlPath)
	if err != nil {
		return err
	}
	css, err := readFile(*cssPath)
	if err != nil {
		return err
	}
	custom, err := readFile(*customPath)
	if err != nil {
		return err
	}
	fmt.Println(codec.EncodeParts(html, css, custom))
	return nil
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	in := fs.String("in", "", "input file (stdin if empty)")
	fs.Parse(args)

	raw, err := readInput(*in)
	if err != nil {
		return err
	}
	fmt.Println(codec.Render(raw))
	return nil
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	key := fs.String("key", "", "field key (generated if empty)")
	in := fs.String("in", "", "stored value file (empty value if unset)")
	configPath := fs.String("config", "", "editor configuration file (JSON or YAML)")
	fs.Parse(args)

	cfg := editor.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return err
		}
		if cfg, err = editor.Load(data, *configPath); err != nil {
			return err
		}
	}

	value, err := readFile(*in)
	if err != nil {
		return err
	}
	field := model.Field{Key: strings.TrimSpace(*key), Value: value}
	if field.Key == "" {
		field.Key = model.NewFieldKey()
	}

	out, err := editor.InitOptions(field.EditorID(), codec.Decode(field.Value), cfg).JSON()
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runMigrate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	dbPath := fs.String("db", "visualeditor.db", "sqlite database path")
	object := fs.String("object", "", "limit to one object id")
	yes := fs.Bool("yes", false, "apply without confirmation")
	fs.Parse(args)

	st, err := store.OpenSQLite(*dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	changes, err := migrate.Plan(ctx, st, *object)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		log.Printf("component=cli action=migrate changes=0")
		return nil
	}
	for _, change := range changes {
		log.Printf("component=cli action=plan object=%s field=%s", change.ObjectID, change.FieldKey)
	}

	if !*yes {
		proceed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Rewrite %d legacy value(s)?", len(changes)),
			Default: false,
		}
		if err := survey.AskOne(prompt, &proceed); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return errors.New("aborted")
			}
			return err
		}
		if !proceed {
			log.Printf("component=cli action=migrate skipped=true")
			return nil
		}
	}

	n, err := migrate.Apply(ctx, st, changes)
	log.Printf("component=cli action=migrate applied=%d", n)
	return err
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	return readFile(path)
}

func readFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
