package models

import "time"

type Article struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	CreatorID uint      `json:"creatorId" gorm:"not null;index"`
	Creator   *User     `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Comments  []Comment `json:"comments,omitempty" gorm:"foreignKey:ArticleID"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Article) OwnerID() uint {
	return a.CreatorID
}
