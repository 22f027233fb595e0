package models

import "time"

type Notification struct {
	BaseModel

	UserID  uint      `gorm:"not null;index" json:"user_id"`
	Message string    `gorm:"type:text;not null" json:"message"`
	SentAt  time.Time `gorm:"not null" json:"sent_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
