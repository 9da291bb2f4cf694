package draft

import "errors"

// Key is the single well known key the in progress text note lives under
const Key = "noteDraft"

var (
	ErrNotFound  = errors.New("draft not found")
	ErrMalformed = errors.New("draft malformed")
)

// Draft is an unsent text note. Saving replaces any previous draft as a whole.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}
