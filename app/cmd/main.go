package main

import (
	"github.com/joho/godotenv"
	"github.com/ribgsilva/note-share/app/cmd/bucket"
	"os"
)

func listCommands() {
	println("Usage: cmd <group> <command>")
	println()
	bucket.ListCommands()
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		listCommands()
		return
	}
	switch os.Args[1] {
	case "bucket":
		bucket.Run(os.Args[2:])
	default:
		listCommands()
	}
}
