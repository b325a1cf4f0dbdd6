package db

import "fmt"

// NotFoundError reports a lookup for a record or account that does not exist.
type NotFoundError struct {
	Kind string // "account" or "record"
	ID   uint
	Name string
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s #%d not found", e.Kind, e.ID)
}
