package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Health(ctx context.Context) error
	NewNote(ctx context.Context) error
	Stroke(ctx context.Context) error
	Show(ctx context.Context) error
	Save(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the ScriptO client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Commands:
//
//	help           show available commands
//	register       create an account and log in
//	login          authenticate
//	logout         forget the session token
//	status         session, backend and working note
//	whoami         subject and expiry of the token
//	health         probe the backend
//	new            start a working note
//	stroke         add a stroke to the working note
//	show           print the note as it would be sent
//	save           send the note to the server
//	exit | quit    leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. The same reader is shared with the prompts of the
// handlers, so no input is lost between them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("scripto %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: new, stroke, show, save, status, whoami, health, logout, exit")
			} else {
				printlnFn("Available commands: register, login, new, stroke, show, status, health, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "health":
			_ = a.Health(ctx)

		case "new":
			_ = a.NewNote(ctx)

		case "stroke":
			_ = a.Stroke(ctx)

		case "show":
			_ = a.Show(ctx)

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
