package db

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dagraham/timemate/internal/models"
)

// CreateRecord persists a new time record.
func (s *Store) CreateRecord(record *models.TimeRecord) error {
	return s.db.Create(record).Error
}

// GetRecord retrieves a time record by id, with its account loaded.
func (s *Store) GetRecord(id uint) (*models.TimeRecord, error) {
	var record models.TimeRecord
	err := s.db.Preload("Account").First(&record, id).Error
	if err != nil {
		return nil, &NotFoundError{Kind: "record", ID: id}
	}
	return &record, nil
}

// SaveRecord writes back a mutated time record.
func (s *Store) SaveRecord(record *models.TimeRecord) error {
	return s.db.Save(record).Error
}

// RunningRecord returns the record with status running, or nil when no
// timer is running. The engine enforces that at most one exists.
func (s *Store) RunningRecord() (*models.TimeRecord, error) {
	var record models.TimeRecord
	err := s.db.Where("status = ?", models.StatusRunning).Preload("Account").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListRecords returns time records with their accounts, ordered by effective
// time then id for deterministic report output. When activeOnly is set, only
// paused and running records are returned.
func (s *Store) ListRecords(activeOnly bool) ([]models.TimeRecord, error) {
	var records []models.TimeRecord
	q := s.db.Preload("Account").Order("effective_at ASC, id ASC")
	if activeOnly {
		q = q.Where("status IN ?", []models.Status{models.StatusPaused, models.StatusRunning})
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListRecordsBefore returns non-inactive records whose effective time
// precedes cutoff. Used by bulk archiving.
func (s *Store) ListRecordsBefore(cutoff time.Time) ([]models.TimeRecord, error) {
	var records []models.TimeRecord
	err := s.db.
		Where("effective_at < ? AND status <> ?", cutoff, models.StatusInactive).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
