package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/devhub-dev/devhub/internal/models"
)

// MemoryStore keeps the blobs in a map. It serializes through JSON exactly
// like GormStore so tests exercise the same round-trip behavior.
type MemoryStore struct {
	mu     sync.Mutex
	blobs  map[string][]byte
	events *Broker
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs:  make(map[string][]byte),
		events: NewBroker(),
	}
}

func (s *MemoryStore) Events() *Broker {
	return s.events
}

func (s *MemoryStore) Load() (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *MemoryStore) Commit(snapshot models.Snapshot) error {
	s.mu.Lock()
	err := s.commit(snapshot)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	s.events.Notify(EventDataChanged)
	return nil
}

func (s *MemoryStore) Mutate(fn func(*models.Snapshot) error) error {
	s.mu.Lock()

	snapshot, err := s.load()

	if err != nil {
		s.mu.Unlock()
		return err
	}

	if err := fn(&snapshot); err != nil {
		s.mu.Unlock()
		return err
	}

	err = s.commit(snapshot)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	s.events.Notify(EventDataChanged)
	return nil
}

func (s *MemoryStore) load() (models.Snapshot, error) {
	var snapshot models.Snapshot

	collections := map[string]interface{}{
		models.BlobUsers:       &snapshot.Users,
		models.BlobTeams:       &snapshot.Teams,
		models.BlobInvitations: &snapshot.Invitations,
		models.BlobMessages:    &snapshot.Messages,
	}

	for key, target := range collections {
		data, exists := s.blobs[key]

		if !exists {
			continue
		}

		if err := json.Unmarshal(data, target); err != nil {
			return models.Snapshot{}, fmt.Errorf("decode %s: %w", key, err)
		}
	}

	return snapshot, nil
}

func (s *MemoryStore) commit(snapshot models.Snapshot) error {
	collections := map[string]interface{}{
		models.BlobUsers:       snapshot.Users,
		models.BlobTeams:       snapshot.Teams,
		models.BlobInvitations: snapshot.Invitations,
		models.BlobMessages:    snapshot.Messages,
	}

	for key, collection := range collections {
		data, err := json.Marshal(collection)

		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}

		s.blobs[key] = data
	}

	return nil
}
