package corpus

import "errors"

var (
	// ErrNotMapping indicates the document root is not a key/value mapping.
	ErrNotMapping = errors.New("corpus: document root must be a mapping")

	// ErrBadEntry indicates an entry value is neither a string nor a
	// {summary, full_text} mapping.
	ErrBadEntry = errors.New("corpus: entry must be a string or a mapping with summary and full_text")
)
