package entity

import "time"

// Article belongs to one User (author). The published flag gates
// default listing and full-text search visibility.
type Article struct {
	ID        uint
	AuthorID  uint
	Title     string
	Content   string
	Summary   string
	Published bool

	Author *User

	CreatedAt time.Time
	UpdatedAt time.Time
}
