package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotImplemented indicates an optional collaborator is not configured.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorpusInvalid indicates the corpus asset could not be turned into records.
	// Examples: duplicate keys after normalisation, an entry without a summary.
	ErrCorpusInvalid = errors.New("corpus invalid")

	// ErrCorpusUnavailable indicates no corpus snapshot has been loaded yet.
	ErrCorpusUnavailable = errors.New("corpus unavailable")

	// ErrNotCitation indicates a glossary-class entry was asked for its full text.
	ErrNotCitation = errors.New("entry has no full text")

	// ErrMalformedTree indicates a document tree violates its structural contract
	// (cycles, nil children, excessive depth). Annotation skips such subtrees.
	ErrMalformedTree = errors.New("malformed document tree")

	// ErrMatchTimeout indicates pattern evaluation exceeded its time budget.
	ErrMatchTimeout = errors.New("pattern match timed out")
)
