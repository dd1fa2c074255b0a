// Package services contains the application services of the CineIA client:
// session resolution, ratings synchronization, recommendations, profile
// data and the admin catalog helpers. Services talk to the backend through
// client.Client and keep the shared state.Store current.
package services
