// Package models defines the client-side data models of the CineIA CLI:
// users, movies, ratings and recommendations as exchanged with the backend,
// plus the request payloads sent to it and their validation rules.
package models
