package model

import (
	"time"
)

// ArticleModel is the GORM-specific struct for the 'articles' table.
type ArticleModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	AuthorID  uint   `gorm:"not null;index"`
	Title     string `gorm:"type:text;not null"`
	Content   string `gorm:"type:text;not null"`
	Summary   string `gorm:"type:text"`
	Published bool   `gorm:"not null;default:false;index"`

	Author *UserModel `gorm:"foreignKey:AuthorID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArticleModel) TableName() string {
	return "articles"
}
