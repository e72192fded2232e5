// Package constants holds provider names and event attributes shared across
// configuration and infrastructure.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Session verifier provider names accepted in configuration.
const (
	AuthProviderFirebase = "firebase"
	AuthProviderLocal    = "local"
)

// Profile audit event actions.
const (
	EventActionCreated    = "profile.created"
	EventActionUpdated    = "profile.updated"
	EventActionDeleted    = "profile.deleted"
	EventActionBulkDelete = "profile.bulk_deleted"
)
