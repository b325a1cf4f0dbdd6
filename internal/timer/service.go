// Package timer implements the timer lifecycle state machine: the
// paused/running/inactive transitions, the single-running-timer guard and
// the day-boundary copy performed when resuming a timer from a prior date.
package timer

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/dagraham/timemate/internal/clock"
	"github.com/dagraham/timemate/internal/db"
	"github.com/dagraham/timemate/internal/models"
)

// Service drives time record transitions against the store.
type Service struct {
	store *db.Store
	clock clock.Clock
	log   *log.Logger
}

// New creates a timer service.
func New(store *db.Store, clk clock.Clock, logger *log.Logger) *Service {
	return &Service{store: store, clock: clk, log: logger}
}

// StartResult describes the outcome of Start. When the requested record was
// created on a prior calendar date it is not resumed: the original is marked
// inactive and a successor record is created and started instead, so
// callers must not assume the returned record keeps the requested id.
type StartResult struct {
	Record models.TimeRecord

	// RolledOver is set when Record is a successor created by the
	// day-boundary copy; Archived then holds the retired original.
	RolledOver bool
	Archived   *models.TimeRecord

	// Stopped holds the previously running record paused by the
	// single-running-timer cascade, if there was one.
	Stopped *models.TimeRecord
}

// Start begins accruing time on the given record. Any other running record
// is stopped first, and a record from a prior calendar date is superseded by
// a fresh copy; both happen with the start itself in one store transaction.
func (s *Service) Start(recordID uint) (*StartResult, error) {
	now := s.clock.Now() // one clock read per operation

	var result StartResult
	err := s.store.Transaction(func(tx *db.Store) error {
		record, err := tx.GetRecord(recordID)
		if err != nil {
			return err
		}
		if record.Status != models.StatusPaused {
			return &InvalidStateError{Op: "start", RecordID: record.ID, Status: record.Status}
		}

		// Single-active invariant: pause whatever is running now.
		running, err := tx.RunningRecord()
		if err != nil {
			return err
		}
		if running != nil {
			s.accrueStop(running, now)
			if err := tx.SaveRecord(running); err != nil {
				return err
			}
			result.Stopped = running
		}

		// Day-boundary check: a timer from a prior date is never resumed
		// in place. Retire it and start a fresh record for the same
		// account so no record accrues time spanning two dates.
		if !clock.SameDay(record.EffectiveAt, now) {
			record.Status = models.StatusInactive
			if err := tx.SaveRecord(record); err != nil {
				return err
			}
			result.Archived = record

			successor := models.TimeRecord{
				AccountID:   record.AccountID,
				Status:      models.StatusRunning,
				StartedAt:   &now,
				EffectiveAt: now,
				Memo:        record.Memo,
			}
			if err := tx.CreateRecord(&successor); err != nil {
				return err
			}
			s.log.Debug("timer rolled over to new record",
				"old", record.ID, "new", successor.ID)
			result.Record = successor
			result.RolledOver = true
			return nil
		}

		record.Status = models.StatusRunning
		record.StartedAt = &now
		record.EffectiveAt = now
		if err := tx.SaveRecord(record); err != nil {
			return err
		}
		result.Record = *record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Stop pauses a running record, adding the elapsed interval to its accrued
// seconds.
func (s *Service) Stop(recordID uint) (*models.TimeRecord, error) {
	now := s.clock.Now()

	var stopped *models.TimeRecord
	err := s.store.Transaction(func(tx *db.Store) error {
		record, err := tx.GetRecord(recordID)
		if err != nil {
			return err
		}
		if record.Status != models.StatusRunning {
			return &InvalidStateError{Op: "stop", RecordID: record.ID, Status: record.Status}
		}
		s.accrueStop(record, now)
		if err := tx.SaveRecord(record); err != nil {
			return err
		}
		stopped = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stopped, nil
}

// StopRunning pauses whichever record is currently running.
func (s *Service) StopRunning() (*models.TimeRecord, error) {
	running, err := s.store.RunningRecord()
	if err != nil {
		return nil, err
	}
	if running == nil {
		return nil, nil
	}
	return s.Stop(running.ID)
}

// Archive retires a record. A running record is stopped first; an already
// inactive record is rejected.
func (s *Service) Archive(recordID uint) (*models.TimeRecord, error) {
	now := s.clock.Now()

	var archived *models.TimeRecord
	err := s.store.Transaction(func(tx *db.Store) error {
		record, err := tx.GetRecord(recordID)
		if err != nil {
			return err
		}
		if record.Status == models.StatusInactive {
			return &InvalidStateError{Op: "archive", RecordID: record.ID, Status: record.Status}
		}
		if record.Status == models.StatusRunning {
			s.accrueStop(record, now)
		}
		record.Status = models.StatusInactive
		if err := tx.SaveRecord(record); err != nil {
			return err
		}
		archived = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return archived, nil
}

// ArchiveBefore retires every non-inactive record whose effective date
// precedes today. A still-running record is stopped first so its elapsed
// time is not discarded. Returns the number of records archived.
func (s *Service) ArchiveBefore() (int, error) {
	now := s.clock.Now()
	midnight := clock.StartOfDay(now)

	count := 0
	err := s.store.Transaction(func(tx *db.Store) error {
		records, err := tx.ListRecordsBefore(midnight)
		if err != nil {
			return err
		}
		for i := range records {
			record := &records[i]
			if record.Status == models.StatusRunning {
				s.accrueStop(record, now)
			}
			record.Status = models.StatusInactive
			if err := tx.SaveRecord(record); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// accrueStop applies the running->paused transition in memory: credit the
// elapsed seconds (clamped at zero) and clear the start timestamp. Callers
// persist the record.
func (s *Service) accrueStop(record *models.TimeRecord, now time.Time) {
	if record.StartedAt != nil {
		raw := now.Unix() - record.StartedAt.Unix()
		if raw < 0 {
			skew := &ClockSkewError{RecordID: record.ID, Seconds: raw}
			s.log.Warn("negative elapsed interval clamped", "err", skew)
		}
		record.AccruedSeconds += Elapsed(*record.StartedAt, now)
	}
	record.Status = models.StatusPaused
	record.StartedAt = nil
}
