package timer

import (
	"fmt"

	"github.com/dagraham/timemate/internal/models"
)

// InvalidStateError reports an operation that is not legal for a record's
// current status, such as starting an inactive record or stopping a paused one.
type InvalidStateError struct {
	Op       string
	RecordID uint
	Status   models.Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s record #%d: status is '%s'", e.Op, e.RecordID, e.Status)
}

// ClockSkewError is advisory only: it describes a negative elapsed interval
// that was clamped to zero. It is logged, never returned, because negative
// accrued time must never be persisted.
type ClockSkewError struct {
	RecordID uint
	Seconds  int64 // the negative interval that was discarded
}

func (e *ClockSkewError) Error() string {
	return fmt.Sprintf("clock skew on record #%d: computed elapsed %ds clamped to 0", e.RecordID, e.Seconds)
}
