package models

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"size:30;not null"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Image     *string   `json:"image" gorm:"size:500"`
	IsAdmin   bool      `json:"isAdmin" gorm:"not null;default:false"`
	Articles  []Article `json:"articles,omitempty" gorm:"foreignKey:CreatorID"`
	Comments  []Comment `json:"comments,omitempty" gorm:"foreignKey:CreatorID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerID is the id a profile operation is checked against.
func (u *User) OwnerID() uint {
	return u.ID
}
