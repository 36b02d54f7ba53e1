// Package domain defines the core business entities for Lexa.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DefinitionRecord: A legal term or statute article with its summary
//   - Corpus: The immutable, ordered set of definition records
//   - SearchResult: A ranked hit for a glossary query
//   - Node: A rendered message tree (text leaves and elements)
//   - MatchSpan: A located, classified term occurrence inside a text leaf
//   - Draft: A saved assistant answer
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
