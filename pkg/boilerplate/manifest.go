package boilerplate

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the conventional manifest name inside a boilerplate set.
const ManifestFile = "manifest.yaml"

const (
	defaultSetName    = "custom"
	defaultSetVersion = "0.0.0"
	defaultExtension  = ".js"
)

type manifestFile struct {
	Name      string                 `yaml:"name"`
	Version   string                 `yaml:"version"`
	Templates map[string]string      `yaml:"templates"`
	Variants  map[string]variantFile `yaml:"variants"`
}

type variantFile struct {
	Templates map[string]string `yaml:"templates"`
}

// LoadManifest reads ManifestFile from fsys. A set without a manifest gets an
// empty one, in which case every artifact maps to "<artifact>.js".
func LoadManifest(fsys fs.FS) (*theme.Manifest, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if errors.Is(err, fs.ErrNotExist) {
		return &theme.Manifest{
			Name:      defaultSetName,
			Version:   defaultSetVersion,
			Templates: map[string]string{},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("boilerplate: read manifest: %w", err)
	}
	return parseManifest(data)
}

func parseManifest(data []byte) (*theme.Manifest, error) {
	var raw manifestFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("boilerplate: parse manifest: %w", err)
	}

	manifest := &theme.Manifest{
		Name:      strings.TrimSpace(raw.Name),
		Version:   strings.TrimSpace(raw.Version),
		Templates: cleanTemplates(raw.Templates),
	}
	if manifest.Name == "" {
		manifest.Name = defaultSetName
	}
	if manifest.Version == "" {
		manifest.Version = defaultSetVersion
	}
	if len(raw.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(raw.Variants))
		for name, variant := range raw.Variants {
			name = strings.TrimSpace(name)
			if name == "" {
				return nil, errors.New("boilerplate: manifest declares a variant with an empty name")
			}
			manifest.Variants[name] = theme.Variant{Templates: cleanTemplates(variant.Templates)}
		}
	}
	return manifest, nil
}

func cleanTemplates(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, path := range in {
		key = strings.TrimSpace(key)
		path = strings.TrimSpace(path)
		if key == "" || path == "" {
			continue
		}
		out[key] = path
	}
	return out
}

// resolveTemplatePath picks the file for an artifact: the variant override
// first, then the manifest entry, then the "<artifact>.js" convention.
func resolveTemplatePath(manifest *theme.Manifest, variant, name string) string {
	if manifest != nil {
		if variant != "" {
			if v, ok := manifest.Variants[variant]; ok {
				if path := v.Templates[name]; path != "" {
					return path
				}
			}
		}
		if path := manifest.Templates[name]; path != "" {
			return path
		}
	}
	return name + defaultExtension
}

// VariantNames lists the variants declared by a manifest.
func VariantNames(manifest *theme.Manifest) []string {
	if manifest == nil {
		return nil
	}
	names := make([]string, 0, len(manifest.Variants))
	for name := range manifest.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
