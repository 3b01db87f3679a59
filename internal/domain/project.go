package domain

import "time"

type Project struct {
	ID          string
	Name        string
	Description string
	OwnerID     string
	Archived    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
