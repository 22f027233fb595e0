package models

type Employee struct {
	BaseModel

	Name  string `gorm:"size:50;not null" json:"name"`
	Email string `gorm:"size:50;not null" json:"email"`
	Phone string `gorm:"size:50" json:"phone"`
	Post  string `gorm:"size:50" json:"post"`

	// Relationships
	Tasks []Task `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"tasks,omitempty"`
}
