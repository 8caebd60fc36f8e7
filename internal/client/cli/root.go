package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if a.isLoggedIn() {
		s = "logged in"
	}
	if m := a.Mode(); m != ModeUnknown {
		if s != "" {
			s += " "
		}
		s += string(m)
	}
	if a.note != nil {
		if s != "" {
			s += " "
		}
		s += "*" + a.note.Title
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run starts the connectivity watcher and the REPL and blocks until the user
// exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.printf("Welcome to ScriptO CLI (type 'help' for commands)\n")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if !a.isLoggedIn() {
		a.printf("Not logged in. Use 'login' or 'register'.\n")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
