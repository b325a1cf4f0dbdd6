package models

import (
	"time"
)

// Status is the lifecycle state of a time record.
type Status string

const (
	StatusPaused   Status = "paused"
	StatusRunning  Status = "running"
	StatusInactive Status = "inactive" // terminal
)

// TimeRecord accumulates seconds spent on one account during one calendar day.
type TimeRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AccountID uint   `gorm:"not null;index" json:"account_id"`
	Status    Status `gorm:"default:paused" json:"status"`

	// AccruedSeconds only grows, and only on a running->paused transition.
	AccruedSeconds int64 `gorm:"not null;default:0" json:"accrued_seconds"`

	// StartedAt is non-nil exactly while the record is running.
	StartedAt *time.Time `json:"started_at"`

	// EffectiveAt is the instant of the most recent start, or the creation
	// instant if the record has never run. Reports attribute the record's
	// time to this date.
	EffectiveAt time.Time `gorm:"not null;index" json:"effective_at"`

	Memo string `json:"memo"`

	// Relationships
	Account Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"account"`
}

// Running reports whether the record is currently accruing time.
func (r *TimeRecord) Running() bool {
	return r.Status == StatusRunning
}
