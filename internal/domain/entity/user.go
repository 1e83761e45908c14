package entity

import "time"

// User is both the publishing variant's author entity and the catalog
// variant's reviewer identity. Email is unique.
type User struct {
	ID        uint
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
