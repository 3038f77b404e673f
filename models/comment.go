package models

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	ArticleID uint      `json:"articleId" gorm:"not null;index"`
	Article   *Article  `json:"article,omitempty" gorm:"foreignKey:ArticleID"`
	CreatorID uint      `json:"creatorId" gorm:"not null;index"`
	Creator   *User     `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Comment) OwnerID() uint {
	return c.CreatorID
}
