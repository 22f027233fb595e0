package models

// UserGroup associates a user with a group. The (user_id, group_id)
// pair is unique; the row itself is addressed by its surrogate id.
type UserGroup struct {
	BaseModel

	UserID  uint `gorm:"not null;uniqueIndex:idx_user_group" json:"user_id"`
	GroupID uint `gorm:"not null;uniqueIndex:idx_user_group" json:"group_id"`

	// Relationships
	User  User  `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Group Group `gorm:"foreignKey:GroupID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
