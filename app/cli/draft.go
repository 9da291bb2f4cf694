package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ribgsilva/note-share/persistence/v1/draft"
	"io"
)

const messageNoDraft = "No draft saved."

type DraftCommand struct {
	Show  DraftShowCommand  `cmd:"show" help:"Print the saved draft."`
	Clear DraftClearCommand `cmd:"clear" help:"Discard the saved draft."`
}

type DraftShowCommand struct {
	DraftOptions `embed:""`
}

func (c DraftShowCommand) Run(ctx context.Context, out io.Writer) error {
	drafts, release, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer release()

	d, err := drafts.Load(ctx, draft.Key)
	switch {
	case errors.Is(err, draft.ErrNotFound), errors.Is(err, draft.ErrMalformed):
		_, err = fmt.Fprintln(out, messageNoDraft)
		return err
	case err != nil:
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

type DraftClearCommand struct {
	DraftOptions `embed:""`
}

func (c DraftClearCommand) Run(ctx context.Context, out io.Writer) error {
	drafts, release, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := drafts.Delete(ctx, draft.Key); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, "Draft discarded.")
	return err
}
