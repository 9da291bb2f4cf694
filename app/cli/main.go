package main

import (
	"context"
	"fmt"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"io"
	"os"
)

type CLI struct {
	Compose ComposeCommand `cmd:"compose" help:"Write a note and publish it, or keep it as a draft."`
	Draft   DraftCommand   `cmd:"draft" help:"Inspect or discard the saved draft."`
}

func main() {
	_ = godotenv.Load()

	var cli CLI
	ctx := context.Background()
	kctx := kong.Parse(&cli,
		kong.Name("notes"),
		kong.Description("Compose text notes or upload pdf notes."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(io.Writer(os.Stdout), (*io.Writer)(nil)),
	)
	if err := kctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
