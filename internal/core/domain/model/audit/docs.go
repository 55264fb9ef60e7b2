// Package audit provides the append-only operation journal. Every state
// changing command records an Entry in the same transaction as the change
// itself, so the journal never disagrees with the data it describes.
//
// Entries are identified by a client-generated UUID, carry a typed Action,
// the id of the affected entity, free-form details, and a UTC timestamp.
// Entries are never updated; old entries are purged by the retention job.
package audit
