package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/devhub-dev/devhub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists each collection as one JSON blob row, rewritten in full
// on every commit. Last write wins at snapshot granularity; Mutate holds the
// store lock across the whole read-modify-write cycle.
type GormStore struct {
	db     *gorm.DB
	mu     sync.Mutex
	events *Broker
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:     db,
		events: NewBroker(),
	}
}

func (s *GormStore) Events() *Broker {
	return s.events
}

func (s *GormStore) Load() (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *GormStore) Commit(snapshot models.Snapshot) error {
	s.mu.Lock()
	err := s.commit(snapshot)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	s.events.Notify(EventDataChanged)
	return nil
}

func (s *GormStore) Mutate(fn func(*models.Snapshot) error) error {
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

func (s *GormStore) load() (models.Snapshot, error) {
	var snapshot models.Snapshot

	collections := map[string]interface{}{
		models.BlobUsers:       &snapshot.Users,
		models.BlobTeams:       &snapshot.Teams,
		models.BlobInvitations: &snapshot.Invitations,
		models.BlobMessages:    &snapshot.Messages,
	}

	for key, target := range collections {
		var blob models.StateBlob

		err := s.db.Where("key = ?", key).First(&blob).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}

		if err != nil {
			return models.Snapshot{}, fmt.Errorf("load %s: %w", key, err)
		}

		if len(blob.Data) == 0 {
			continue
		}

		if err := json.Unmarshal(blob.Data, target); err != nil {
			return models.Snapshot{}, fmt.Errorf("decode %s: %w", key, err)
		}
	}

	return snapshot, nil
}

func (s *GormStore) commit(snapshot models.Snapshot) error {
	collections := map[string]interface{}{
		models.BlobUsers:       snapshot.Users,
		models.BlobTeams:       snapshot.Teams,
		models.BlobInvitations: snapshot.Invitations,
		models.BlobMessages:    snapshot.Messages,
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, collection := range collections {
			data, err := json.Marshal(collection)

			if err != nil {
				return fmt.Errorf("encode %s: %w", key, err)
			}

			blob := models.StateBlob{
				Key:  key,
				Data: data,
			}

			err = tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
			}).Create(&blob).Error

			if err != nil {
				return fmt.Errorf("write %s: %w", key, err)
			}
		}

		return nil
	})
}
