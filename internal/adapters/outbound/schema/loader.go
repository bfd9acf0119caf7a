// Package schema loads JSON Schema definitions and validates decoded
// documents against them using the gojsonschema engine.
package schema

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/bakebuild/bakecheck/internal/domain"
)

// Loader implements domain.SchemaLoader by compiling JSON Schema files.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads and compiles the schema at path. Schemas are re-read on
// every call; two loads of the same path return independent instances.
func (l *Loader) Load(path string) (domain.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", path, err)
	}

	return &jsonSchema{compiled: compiled}, nil
}

// jsonSchema adapts a compiled gojsonschema schema to domain.Schema.
type jsonSchema struct {
	compiled *gojsonschema.Schema
}

// Validate evaluates the document and returns every violation found.
// The engine collects exhaustively; results are sorted by path and
// message so the first violation of a failed check is reproducible
// across runs. Required-field violations carry the path of the
// containing object, since the missing field has no node of its own.
func (s *jsonSchema) Validate(doc *domain.Document) ([]domain.Violation, error) {
	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(doc.Root))
	if err != nil {
		return nil, fmt.Errorf("evaluating document: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	violations := make([]domain.Violation, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		violations = append(violations, domain.Violation{
			Path:    pathSegments(re.Context()),
			Message: re.Description(),
		})
	}

	sort.SliceStable(violations, func(i, j int) bool {
		pi, pj := domain.FormatPath(violations[i].Path), domain.FormatPath(violations[j].Path)
		if pi != pj {
			return pi < pj
		}
		return violations[i].Message < violations[j].Message
	})

	return violations, nil
}

// pathSegments converts the engine's context chain into domain path
// segments. Purely numeric segments are sequence indexes; bake config
// keys are plain identifiers, so the distinction is unambiguous here.
func pathSegments(ctx *gojsonschema.JsonContext) []domain.PathSegment {
	if ctx == nil {
		return nil
	}

	raw := strings.TrimPrefix(ctx.String("/"), "(root)")
	raw = strings.TrimPrefix(raw, "/")
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, "/")
	segments := make([]domain.PathSegment, 0, len(parts))
	for _, part := range parts {
		if idx, err := strconv.Atoi(part); err == nil {
			segments = append(segments, domain.IndexSegment(idx))
			continue
		}
		segments = append(segments, domain.KeySegment(part))
	}
	return segments
}
