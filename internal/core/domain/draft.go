package domain

import "time"

// Draft is an assistant answer the user saved for later reuse.
type Draft struct {
	// ID is the unique identifier for the draft.
	ID string

	// Text is the saved message text.
	Text string

	// CreatedAt is when the draft was saved.
	CreatedAt time.Time
}
