package models

import "gorm.io/datatypes"

type Plan struct {
	BaseModel

	UserID    uint           `gorm:"not null;index" json:"user_id"`
	StartDate datatypes.Date `gorm:"not null" json:"start_date"`
	EndDate   datatypes.Date `gorm:"not null" json:"end_date"`
	PlanType  string         `gorm:"size:50" json:"plan_type"`

	// Relationships
	User  User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Menus []Menu `gorm:"foreignKey:PlanID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"menus,omitempty"`
}
