package domain

import "time"

// Todo is the leaf actionable item. Unlike planning items its status is an
// independently settable stored value.
type Todo struct {
	ID           string
	ProjectID    string
	TaskID       string
	Title        string
	Status       Status
	AssigneeID   string
	DueDate      *time.Time
	Memo         string
	ReferenceURL string
	Today        bool
	OrderIndex   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DueOn reports whether the todo is due on the given calendar day.
func (t *Todo) DueOn(day time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	y1, m1, d1 := t.DueDate.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
