package article

import "errors"

// ErrNoArticleService indicates that no article service was provided.
var ErrNoArticleService = errors.New("article service is required")
