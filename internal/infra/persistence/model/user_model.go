package model

import (
	"time"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"type:text;not null;uniqueIndex"`
	Name      string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
