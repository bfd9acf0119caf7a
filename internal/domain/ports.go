package domain

// Document is an in-memory tree decoded from a configuration file.
// Mappings are map[string]any, sequences []any, scalars keep their
// exact type (string, int, float64, bool, nil).
type Document struct {
	Path string
	Root any
}

// Schema is a structural contract a document must satisfy. Validate is
// a pure function of the document: it returns every violation found, in
// deterministic traversal order, and an error only when the engine
// itself could not evaluate the document.
type Schema interface {
	Validate(doc *Document) ([]Violation, error)
}

// SchemaLoader reads a schema definition from disk. Missing files are
// reported with an error wrapping fs.ErrNotExist; anything else that
// fails is a malformed schema. Loading the same path twice yields
// equivalent but independent schemas.
type SchemaLoader interface {
	Load(path string) (Schema, error)
}

// DocumentLoader reads a configuration file into a Document, with the
// same error taxonomy as SchemaLoader.
type DocumentLoader interface {
	Load(path string) (*Document, error)
}

// RepoInfo identifies the git state a suite ran against.
type RepoInfo struct {
	Branch string `json:"branch,omitempty"`
	Commit string `json:"commit,omitempty"`
}

// GitInfo resolves repository metadata for the report header.
type GitInfo interface {
	Describe(projectPath string) (RepoInfo, bool)
}
