// Package client talks to the ScriptO backend over HTTP.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): note
//     create/update, login, registration and a liveness probe.
//  2. A concrete net/http implementation (see HTTPClient) that reads the
//     bearer token from a TokenSource, serializes notes through package wire,
//     and maps HTTP outcomes to the errors below.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors matched with errors.Is:
// ErrInvalidRequest, ErrUnauthorized, ErrMalformedResponse, ErrTransport,
// ErrConnectionRefused, ErrInvalidCredentials and ErrServer. A *ServerError
// carries the backend's message; a *TransportError carries the network cause.
//
// A 401 on an authenticated call clears the token source before
// ErrUnauthorized is returned. Calls are never retried.
//
// Redirects are not followed. A 307 is logged with its Location and then
// treated like any other non-2xx status.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context; cancelling it aborts the request on the client side only.
package client
