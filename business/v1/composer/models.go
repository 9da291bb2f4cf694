package composer

import (
	"context"
	"encoding/json"
	"github.com/ribgsilva/note-share/business/v1/upload"
	"github.com/ribgsilva/note-share/persistence/v1/draft"
	"io"
)

type NoteType string

const (
	TypeText NoteType = "text"
	TypePDF  NoteType = "pdf"
)

const (
	MessageDraftSaved  = "Draft saved successfully!"
	MessagePDFUploaded = "PDF uploaded successfully!"
)

// DraftStore keeps the single in progress text note
type DraftStore interface {
	Load(ctx context.Context, key string) (draft.Draft, error)
	Save(ctx context.Context, key string, d draft.Draft) error
	Delete(ctx context.Context, key string) error
}

// Uploader sends a file to the upload endpoint
type Uploader interface {
	Upload(ctx context.Context, filename string, body io.Reader) (upload.Result, error)
}

// File is the document picked for a pdf note
type File struct {
	Name string
	Body io.Reader
}

// Submission is the finished note handed to whoever opened the composer.
// It is either a TextSubmission or a PDFSubmission.
type Submission interface {
	Type() NoteType
}

type TextSubmission struct {
	Title       string
	Description string
	Content     string
}

func (TextSubmission) Type() NoteType { return TypeText }

func (s TextSubmission) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Type        NoteType `json:"type"`
		Content     string   `json:"content"`
	}{s.Title, s.Description, TypeText, s.Content})
}

type PDFSubmission struct {
	Title       string
	Description string
	FileURL     string
}

func (PDFSubmission) Type() NoteType { return TypePDF }

func (s PDFSubmission) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Type        NoteType `json:"type"`
		FileURL     string   `json:"fileUrl"`
	}{s.Title, s.Description, TypePDF, s.FileURL})
}
