package report

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-bindgen/pkg/descriptor"
)

// Format selects the catalog template.
type Format string

const (
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// ParseFormat resolves a catalog format name.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatHTML:
		return FormatHTML, nil
	case FormatText, "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("report: unknown format %q", raw)
	}
}

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  fs.FS
	extension  string
	goTemplate []gotemplatepkg.Option
}

// WithBaseDir loads templates from a directory on disk ahead of the embedded
// templates.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from files instead of the embedded templates.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the template file extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGoTemplateOptions forwards options to the underlying go-template
// renderer. They are applied after the engine's own loaders and filters, so
// they can add global data, helpers or replace the template sources.
func WithGoTemplateOptions(opts ...gotemplatepkg.Option) Option {
	return func(cfg *config) {
		for _, opt := range opts {
			if opt != nil {
				cfg.goTemplate = append(cfg.goTemplate, opt)
			}
		}
	}
}

// Engine renders descriptor catalogs through a go-template renderer.
type Engine struct {
	renderer *gotemplatepkg.Engine
}

// New constructs an Engine. Without options it renders the embedded templates.
func New(options ...Option) (*Engine, error) {
	cfg := &config{
		extension: ".tpl",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.templates == nil {
		cfg.templates = EmbeddedTemplates()
	}

	opts := []gotemplatepkg.Option{
		gotemplatepkg.WithFS(cfg.templates),
		gotemplatepkg.WithExtension(cfg.extension),
		gotemplatepkg.WithTemplateFunc(map[string]any{
			"doc_html": pongo2.FilterFunction(filterDocHTML),
			"doc_text": pongo2.FilterFunction(filterDocText),
		}),
	}
	if cfg.baseDir != "" {
		opts = append(opts, gotemplatepkg.WithBaseDir(cfg.baseDir))
	}
	opts = append(opts, cfg.goTemplate...)

	renderer, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("report: create renderer: %w", err)
	}
	return &Engine{renderer: renderer}, nil
}

// Render writes the catalog for descriptors in the given format. The rendered
// string is returned and also copied to every writer in out.
func (e *Engine) Render(format Format, descriptors []descriptor.Descriptor, out ...io.Writer) (string, error) {
	if e == nil || e.renderer == nil {
		return "", errors.New("report: engine is nil")
	}
	format, err := ParseFormat(string(format))
	if err != nil {
		return "", err
	}

	rendered, err := e.renderer.RenderTemplate("catalog."+string(format), catalogView(descriptors), out...)
	if err != nil {
		return "", fmt.Errorf("report: render %s catalog: %w", format, err)
	}
	return rendered, nil
}

func filterDocHTML(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(sanitizeHTML(in.String())), nil
}

func filterDocText(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(sanitizeText(in.String())), nil
}
