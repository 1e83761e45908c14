package model

import (
	"time"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"`
	ProductID  uint    `gorm:"not null;index"`
	ReviewerID uint    `gorm:"not null;index"`
	Rating     float64 `gorm:"type:decimal(3,2);not null"`
	Comment    string  `gorm:"type:text"`
	Date       time.Time

	Reviewer *UserModel `gorm:"foreignKey:ReviewerID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
