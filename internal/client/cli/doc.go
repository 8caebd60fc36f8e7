// Package cli provides the interactive ScriptO terminal client.
//
// It wires configuration, the local database, the token store, the HTTP sync
// client and the session into a read-eval-print loop. The loop edits one
// working note at a time: start it with "new", add ink with "stroke", check
// the outgoing form with "show" and send it with "save".
//
// A background watcher probes the backend and reports when it goes offline
// or comes back.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher and runREPL for details.
package cli
