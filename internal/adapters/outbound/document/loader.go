// Package document loads YAML configuration files into untyped trees
// for schema validation.
package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bakebuild/bakecheck/internal/domain"
)

// Loader implements domain.DocumentLoader for YAML files.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads and decodes the YAML file at path. Node typing is exact:
// schema rules discriminate on type, so scalars stay string/int/
// float64/bool/nil and mappings decode to map[string]any.
func (l *Loader) Load(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &domain.Document{Path: path, Root: root}, nil
}
