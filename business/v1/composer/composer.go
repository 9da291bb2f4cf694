// Package composer gathers a note's metadata and content and turns it into
// exactly one Submission, or keeps it as a draft for later.
package composer

import (
	"context"
	"errors"
	"github.com/ribgsilva/note-share/persistence/v1/draft"
	"go.uber.org/zap"
	"strings"
	"sync"
	"sync/atomic"
)

type Composer struct {
	drafts   DraftStore
	uploader Uploader
	log      *zap.SugaredLogger

	mu          sync.Mutex
	noteType    NoteType
	title       string
	description string
	content     string
	file        *File

	submitting atomic.Bool
}

// New opens a composer in text mode, prefilled from the stored draft when one can be read.
// A missing or unreadable draft leaves the fields empty.
func New(ctx context.Context, drafts DraftStore, uploader Uploader, log *zap.SugaredLogger) *Composer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	c := &Composer{
		drafts:   drafts,
		uploader: uploader,
		log:      log,
		noteType: TypeText,
	}

	d, err := drafts.Load(ctx, draft.Key)
	switch {
	case errors.Is(err, draft.ErrNotFound):
	case err != nil:
		log.Warnw("composer", "status", "ignoring stored draft", "ERROR", err)
	default:
		c.title, c.description, c.content = d.Title, d.Description, d.Content
	}
	return c
}

func (c *Composer) Type() NoteType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.noteType
}

// SetType switches between text and pdf notes. Title and description are kept.
func (c *Composer) SetType(t NoteType) error {
	if t != TypeText && t != TypePDF {
		return ErrUnknownType
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.noteType = t
	return nil
}

func (c *Composer) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title
}

func (c *Composer) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
}

func (c *Composer) Description() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.description
}

func (c *Composer) SetDescription(description string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.description = description
}

func (c *Composer) Content() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}

func (c *Composer) SetContent(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = content
}

// SelectFile picks the document a pdf note uploads. nil clears the selection.
func (c *Composer) SelectFile(f *File) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.file = f
}

// Submitting reports whether a submission is in flight
func (c *Composer) Submitting() bool {
	return c.submitting.Load()
}

// SaveDraft replaces the stored draft with the current text note and returns the confirmation to show
func (c *Composer) SaveDraft(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.noteType != TypeText {
		c.mu.Unlock()
		return "", ErrDraftTextOnly
	}
	d := draft.Draft{Title: c.title, Description: c.description, Content: c.content}
	c.mu.Unlock()

	if err := c.drafts.Save(ctx, draft.Key, d); err != nil {
		return "", err
	}
	return MessageDraftSaved, nil
}

// Submit validates the form and produces the Submission.
// Only one Submit runs at a time; a concurrent call gets ErrSubmitInProgress.
func (c *Composer) Submit(ctx context.Context) (Submission, error) {
	if !c.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmitInProgress
	}
	defer c.submitting.Store(false)

	c.mu.Lock()
	noteType, title, description, content, file := c.noteType, c.title, c.description, c.content, c.file
	c.mu.Unlock()

	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	if noteType == TypePDF {
		return c.submitPDF(ctx, title, description, file)
	}
	return c.submitText(ctx, title, description, content)
}

func (c *Composer) submitPDF(ctx context.Context, title, description string, file *File) (Submission, error) {
	if file == nil || file.Body == nil {
		return nil, ErrFileRequired
	}

	res, err := c.uploader.Upload(ctx, file.Name, file.Body)
	if err != nil {
		c.log.Errorw("composer", "status", "upload failed", "file", file.Name, "ERROR", err)
		te := &TransportError{Err: err}
		var sc interface{ StatusCode() int }
		if errors.As(err, &sc) {
			te.Status = sc.StatusCode()
		}
		return nil, te
	}

	c.log.Infow("composer", "status", MessagePDFUploaded, "fileUrl", res.FileURL)
	return PDFSubmission{Title: title, Description: description, FileURL: res.FileURL}, nil
}

func (c *Composer) submitText(ctx context.Context, title, description, content string) (Submission, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	s := TextSubmission{Title: title, Description: description, Content: content}
	if err := c.drafts.Delete(ctx, draft.Key); err != nil {
		c.log.Warnw("composer", "status", "could not delete draft", "ERROR", err)
	}
	return s, nil
}
