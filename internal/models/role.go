package models

type Role struct {
	BaseModel

	Name        string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"users,omitempty"`
}
