package composer

import (
	"errors"
	"fmt"
)

// ValidationError is a problem the user fixes by editing the form. Message is shown as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrTitleRequired   = &ValidationError{Message: "Please enter a title."}
	ErrFileRequired    = &ValidationError{Message: "Please select a PDF file."}
	ErrContentRequired = &ValidationError{Message: "Please enter note content."}
	ErrDraftTextOnly   = &ValidationError{Message: "Drafts can only be saved for text notes."}

	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrUnknownType      = errors.New("unknown note type")
)

// TransportError is a failed call to the upload endpoint. No submission is produced.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("Failed to upload PDF (status %d): %s", e.Status, e.Err)
	}
	return fmt.Sprintf("Failed to upload PDF: %s", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
