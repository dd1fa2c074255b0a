// Package cli provides the interactive CineIA command-line client.
//
// It wires configuration, local storage, the REST API client and the
// services into a REPL. Typical flow: resolve the stored session, load the
// catalog and the user's ratings in parallel, start a background
// connectivity watcher, and execute user commands.
//
// Key features:
//   - Login / Register / Logout, with "remember me" choosing the storage scope
//   - Catalog grid, movie detail, 1..10 ratings and favorites
//   - One-shot search and a live, debounced search (find)
//   - Recommendations with a timeout and catalog fallback
//   - Profile with rating count, recent ratings and image overrides
//   - Admin-only external search, catalog insert and stats
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
