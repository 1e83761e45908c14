package entity

import "time"

// Review belongs to exactly one Product and one reviewer (User).
// Uniqueness of the (product, reviewer, comment) tuple is only enforced
// during seeding, not at the entity level.
type Review struct {
	ID         uint
	ProductID  uint
	ReviewerID uint
	Rating     float64
	Comment    string
	Date       time.Time

	Reviewer *User
}
