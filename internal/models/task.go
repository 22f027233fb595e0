package models

import "gorm.io/datatypes"

type Task struct {
	BaseModel

	ProjectID   uint           `gorm:"not null;index" json:"project_id"`
	EmployeeID  uint           `gorm:"not null;index" json:"employee_id"`
	Title       string         `gorm:"size:50;not null" json:"title"`
	Description string         `gorm:"size:500" json:"description"`
	Deadline    datatypes.Date `gorm:"not null" json:"deadline"`
	Status      string         `gorm:"size:20;not null" json:"status"`

	// Relationships
	Project  Project  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Employee Employee `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
