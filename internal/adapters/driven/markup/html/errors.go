package html

import "errors"

// ErrNilNode indicates Render was called without a tree.
var ErrNilNode = errors.New("html: nil node")
