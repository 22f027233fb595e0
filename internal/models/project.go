package models

import "gorm.io/datatypes"

type Project struct {
	BaseModel

	Name        string         `gorm:"size:50;not null" json:"name"`
	Description string         `gorm:"size:50" json:"description"`
	InitDate    datatypes.Date `gorm:"not null" json:"init_date"`
	FinishDate  datatypes.Date `gorm:"not null" json:"finish_date"`

	// Relationships
	Tasks []Task `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"tasks,omitempty"`
}
