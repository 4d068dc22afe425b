// Package locale merges generated message sections into locale JSON files.
// Files are parsed into an ordered map so existing keys keep their position
// and formatting is normalised on write.
package locale

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/iancoleman/orderedmap"

	"github.com/goliatone/go-crudgen/pkg/fragments"
	"github.com/goliatone/go-crudgen/pkg/resource"
)

// ErrLocaleMalformed reports a locale file that is not a JSON object.
var ErrLocaleMalformed = errors.New("locale: file is not a JSON object")

// DefaultCodes lists the locales generated when none are configured.
var DefaultCodes = []string{"en", "it"}

// Dir is the directory, relative to the generation root, holding locale files.
const Dir = "locales"

// Path returns the locale file for code below root.
func Path(root, code string) string {
	return filepath.Join(root, Dir, strings.TrimSpace(code)+".json")
}

// Option configures a Merger.
type Option func(*Merger)

// WithDryRun computes merged output without writing it.
func WithDryRun(enabled bool) Option {
	return func(m *Merger) {
		m.dryRun = enabled
	}
}

// Merger writes resource sections into locale files. In dry-run mode merged
// documents are kept in memory per path, so later merges into the same file
// build on earlier ones exactly as real writes would.
type Merger struct {
	dryRun bool

	mu      sync.Mutex
	pending map[string][]byte
}

// NewMerger constructs a Merger.
func NewMerger(options ...Option) *Merger {
	m := &Merger{}
	for _, opt := range options {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Merge sets the descriptor's section in the file at path, creating the file
// and its parent directories when missing. A malformed file is left as is.
func (m *Merger) Merge(ctx context.Context, path string, d resource.Descriptor) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := filepath.Clean(path)
	existing, ok := m.pending[key]
	if !ok {
		var err error
		existing, err = os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("locale: read %s: %w", path, err)
		}
	}

	merged, err := Apply(existing, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.dryRun {
		if m.pending == nil {
			m.pending = make(map[string][]byte)
		}
		m.pending[key] = merged
		return merged, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("locale: create directory: %w", err)
	}
	if err := os.WriteFile(path, merged, 0o644); err != nil {
		return nil, fmt.Errorf("locale: write %s: %w", path, err)
	}
	return merged, nil
}

// Reset drops the documents buffered by earlier dry-run merges.
func (m *Merger) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = nil
}

// Apply merges the descriptor's section into the JSON object held in data and
// returns the serialized result. Empty input is treated as an empty object. An
// existing section for the resource is replaced in place; a new one is
// appended after the existing keys.
func Apply(data []byte, d resource.Descriptor) ([]byte, error) {
	doc := orderedmap.New()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLocaleMalformed, err)
		}
	}

	doc.Set(fragments.LocaleSectionKey(d), *fragments.LocaleMessages(d))
	return encode(doc)
}

func encode(doc *orderedmap.OrderedMap) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("locale: encode: %w", err)
	}
	return buf.Bytes(), nil
}
