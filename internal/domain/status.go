package domain

import "time"

// DeriveStatus maps the presence of actual start/end dates to a lifecycle
// status. The end date wins: an item with an actual end is DONE even if it
// never recorded an actual start.
func DeriveStatus(actualStart, actualEnd *time.Time) Status {
	if actualEnd != nil {
		return StatusDone
	}
	if actualStart != nil {
		return StatusInProgress
	}
	return StatusNotStarted
}
