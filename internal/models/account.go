package models

import "time"

type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	Uploads []Upload `gorm:"foreignKey:AccountID" json:"-"`
}

func (Account) TableName() string {
	return "users"
}
