package corpus

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driven"
)

//go:embed corpus.yaml
var embeddedCorpus []byte

// EmbeddedSource is reported by the loader of the built-in corpus.
const EmbeddedSource = "embedded"

// Ensure Loader implements the interface.
var _ driven.CorpusLoader = (*Loader)(nil)

// Loader reads a YAML corpus from a file, or the embedded default.
type Loader struct {
	path string
}

// NewLoader creates a loader for path. An empty path selects the embedded
// corpus.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and parses the corpus.
func (l *Loader) Load(ctx context.Context) ([]domain.DefinitionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := embeddedCorpus
	if l.path != "" {
		b, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("reading corpus %s: %w", l.path, err)
		}
		data = b
	}

	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Source(), err)
	}
	return records, nil
}

// Source returns the file path, or EmbeddedSource.
func (l *Loader) Source() string {
	if l.path == "" {
		return EmbeddedSource
	}
	return l.path
}

// Path returns the corpus file path; empty for the embedded corpus.
func (l *Loader) Path() string {
	return l.path
}

// entry is the mapping form of a corpus value.
type entry struct {
	Summary  string `yaml:"summary"`
	FullText string `yaml:"full_text"`
}

// Parse decodes a YAML corpus into records in document order. Both value
// shapes are unified: a bare string becomes a record with only a summary.
// An empty document is an empty corpus.
func Parse(data []byte) ([]domain.DefinitionRecord, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorpusInvalid, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorpusInvalid, ErrNotMapping)
	}

	records := make([]domain.DefinitionRecord, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", domain.ErrCorpusInvalid, keyNode.Line, err)
		}

		rec := domain.DefinitionRecord{Key: key}
		switch valNode.Kind {
		case yaml.ScalarNode:
			if err := valNode.Decode(&rec.Summary); err != nil {
				return nil, fmt.Errorf("%w: %q: %w", domain.ErrCorpusInvalid, key, err)
			}
		case yaml.MappingNode:
			var e entry
			if err := valNode.Decode(&e); err != nil {
				return nil, fmt.Errorf("%w: %q: %w", domain.ErrCorpusInvalid, key, err)
			}
			rec.Summary, rec.FullText = e.Summary, e.FullText
		default:
			return nil, fmt.Errorf("%w: %q at line %d: %w", domain.ErrCorpusInvalid, key, valNode.Line, ErrBadEntry)
		}

		records = append(records, rec)
	}

	return records, nil
}
