package boilerplate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 32

// Option configures a Store.
type Option func(*storeConfig)

type storeConfig struct {
	overrides  []fs.FS
	variant    string
	cacheSize  int
	noEmbedded bool
}

// WithDir layers a directory of boilerplates over the bundled set. Files in
// the directory win; anything missing falls through to the next layer.
func WithDir(dir string) Option {
	return func(cfg *storeConfig) {
		if strings.TrimSpace(dir) == "" {
			return
		}
		cfg.overrides = append(cfg.overrides, os.DirFS(dir))
	}
}

// WithFS layers an arbitrary filesystem over the bundled set.
func WithFS(fsys fs.FS) Option {
	return func(cfg *storeConfig) {
		if fsys != nil {
			cfg.overrides = append(cfg.overrides, fsys)
		}
	}
}

// WithVariant selects a manifest variant whose template entries take
// precedence over the base mapping.
func WithVariant(name string) Option {
	return func(cfg *storeConfig) {
		cfg.variant = strings.TrimSpace(name)
	}
}

// WithCacheSize bounds the number of parsed templates kept in memory.
func WithCacheSize(size int) Option {
	return func(cfg *storeConfig) {
		cfg.cacheSize = size
	}
}

// WithoutEmbedded drops the bundled set so only the supplied layers are used.
func WithoutEmbedded() Option {
	return func(cfg *storeConfig) {
		cfg.noEmbedded = true
	}
}

// Store resolves artifact names to boilerplate templates.
type Store struct {
	files    fs.FS
	manifest *theme.Manifest
	variant  string
	cache    *lru.Cache[string, Template]
}

// NewStore builds a Store. Override layers are consulted in the order they
// were supplied, before the bundled set.
func NewStore(options ...Option) (*Store, error) {
	cfg := storeConfig{cacheSize: defaultCacheSize}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	layers := append(layeredFS(nil), cfg.overrides...)
	if !cfg.noEmbedded {
		layers = append(layers, EmbeddedFS())
	}
	if len(layers) == 0 {
		return nil, errors.New("boilerplate: no boilerplate sources configured")
	}

	manifest, err := LoadManifest(layers)
	if err != nil {
		return nil, err
	}
	if err := theme.NewRegistry().Register(manifest); err != nil {
		return nil, fmt.Errorf("boilerplate: register manifest %q: %w", manifest.Name, err)
	}
	if cfg.variant != "" {
		if _, ok := manifest.Variants[cfg.variant]; !ok {
			return nil, fmt.Errorf("boilerplate: manifest %q has no variant %q", manifest.Name, cfg.variant)
		}
	}

	size := cfg.cacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, Template](size)
	if err != nil {
		return nil, fmt.Errorf("boilerplate: template cache: %w", err)
	}

	return &Store{
		files:    layers,
		manifest: manifest,
		variant:  cfg.variant,
		cache:    cache,
	}, nil
}

// Load returns the template for the named artifact.
func (s *Store) Load(ctx context.Context, name string) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Template{}, fmt.Errorf("%w: empty artifact name", ErrTemplateNotFound)
	}

	if tpl, ok := s.cache.Get(name); ok {
		return tpl, nil
	}

	path := resolveTemplatePath(s.manifest, s.variant, name)
	data, err := fs.ReadFile(s.files, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Template{}, fmt.Errorf("%w: %s (%s)", ErrTemplateNotFound, name, path)
		}
		return Template{}, fmt.Errorf("boilerplate: read %s: %w", path, err)
	}

	tpl := Template{Name: name, Path: path, Text: string(data)}
	s.cache.Add(name, tpl)
	return tpl, nil
}

// Names lists the artifacts the manifest maps explicitly.
func (s *Store) Names() []string {
	seen := make(map[string]struct{}, len(s.manifest.Templates))
	for name := range s.manifest.Templates {
		seen[name] = struct{}{}
	}
	if s.variant != "" {
		for name := range s.manifest.Variants[s.variant].Templates {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FS exposes the layered filesystem backing the store.
func (s *Store) FS() fs.FS {
	return s.files
}

// Manifest returns the manifest describing the active set.
func (s *Store) Manifest() *theme.Manifest {
	return s.manifest
}

// Variant returns the selected variant, if any.
func (s *Store) Variant() string {
	return s.variant
}
