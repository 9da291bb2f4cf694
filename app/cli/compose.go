package main

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/ribgsilva/note-share/business/v1/composer"
	"github.com/ribgsilva/note-share/platform/client"
	"io"
	"os"
	"path/filepath"
	"time"
)

type ComposeCommand struct {
	DraftOptions `embed:""`

	APIURL      string        `help:"Base URL of the notes api." env:"NOTES_API_URL" default:"http://localhost:5000/api"`
	Timeout     time.Duration `help:"Give up on an upload after this long. Failed uploads are not retried." env:"NOTES_UPLOAD_TIMEOUT" default:"2m"`
	Type        string        `help:"Kind of note." enum:"text,pdf" default:"text"`
	Title       string        `help:"Note title. Defaults to the draft title."`
	Description string        `help:"Short description. Defaults to the draft description."`
	Content     string        `help:"Content of a text note. Defaults to the draft content."`
	ContentFile string        `help:"Read the content of a text note from this file." type:"existingfile"`
	File        string        `help:"PDF to upload for a pdf note." type:"existingfile"`
	SaveDraft   bool          `help:"Keep the text note as draft instead of publishing it."`
}

func (c ComposeCommand) Run(ctx context.Context, out io.Writer) error {
	drafts, release, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer release()

	comp := composer.New(ctx, drafts, client.New(c.APIURL, c.Timeout), c.logger())
	if err := comp.SetType(composer.NoteType(c.Type)); err != nil {
		return err
	}
	if c.Title != "" {
		comp.SetTitle(c.Title)
	}
	if c.Description != "" {
		comp.SetDescription(c.Description)
	}
	switch {
	case c.ContentFile != "":
		data, err := os.ReadFile(c.ContentFile)
		if err != nil {
			return fmt.Errorf("read content: %w", err)
		}
		comp.SetContent(string(data))
	case c.Content != "":
		comp.SetContent(c.Content)
	}
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		defer f.Close()
		comp.SelectFile(&composer.File{Name: filepath.Base(c.File), Body: f})
	}

	if c.SaveDraft {
		msg, err := comp.SaveDraft(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, msg)
		return err
	}

	s, err := comp.Submit(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
