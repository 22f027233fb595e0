package models

import "time"

// BaseModel is embedded by every entity. Rows are removed with hard
// deletes so that foreign-key cascades fire at the database level.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
