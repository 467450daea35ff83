package store

import "github.com/devhub-dev/devhub/internal/models"

// Store owns the durable snapshot. Commit replaces the whole snapshot and
// notifies the broker; Mutate serializes the read-modify-write cycle so two
// callers cannot interleave between Load and Commit.
type Store interface {
	Load() (models.Snapshot, error)
	Commit(snapshot models.Snapshot) error
	Mutate(fn func(*models.Snapshot) error) error
	Events() *Broker
}
