// Package types defines the entity types, the persisted snapshot shape,
// the storage Gateway interface, and the standard errors shared by the
// followdesk store and its storage backends.
package types
