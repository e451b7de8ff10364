package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Show(ctx context.Context) error
	Edit(ctx context.Context) error
	SetField(ctx context.Context, field string) error
	AttachPhoto(ctx context.Context, path string) error
	ListPresets(ctx context.Context) error
	SelectPreset(ctx context.Context, arg string) error
	RemovePhoto(ctx context.Context) error
	Save(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the profile card editor.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands
//
//	help            — show available commands
//	show            — render the profile card
//	edit            — walk through every field (in memory only)
//	set <field>     — edit a single field (name, email, mobile, branch, year, bio)
//	photo [path]    — attach an image file as the profile photo
//	presets         — list the preset avatar catalog
//	preset <n>      — select a preset avatar
//	remove          — remove the photo / preset selection
//	save            — persist the text fields
//	exit | quit     — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("pc> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: show, edit, set <field>, photo [path], presets, preset <n>, remove, save, exit")

		case "show":
			_ = a.Show(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "set":
			if len(args) == 0 {
				printlnFn("Usage: set <name|email|mobile|branch|year|bio>")
				continue
			}
			_ = a.SetField(ctx, args[0])

		case "photo":
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			_ = a.AttachPhoto(ctx, path)

		case "presets":
			_ = a.ListPresets(ctx)

		case "preset":
			if len(args) == 0 {
				printlnFn("Usage: preset <n>")
				continue
			}
			_ = a.SelectPreset(ctx, args[0])

		case "remove":
			_ = a.RemovePhoto(ctx)

		case "save":
			_ = a.Save(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
