// Package client contains client-side building blocks for CineIA.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the backend REST endpoints under /api: users, movies, ratings,
//     recommendations and the admin helpers.
//  2. A concrete HTTP implementation (see HTTPClient) that encodes JSON with
//     goccy/go-json, paces outgoing requests with a token bucket, tags every
//     request with an X-Request-ID and maps failures to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures, 5xx answers and unreadable bodies wrap
// common.ErrNetwork. A well-formed answer with success=false becomes an
// *APIError, which matches common.ErrNotFound. Caller cancellation is
// returned unchanged.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
