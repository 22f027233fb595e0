package models

type Menu struct {
	BaseModel

	PlanID uint   `gorm:"not null;index" json:"plan_id"`
	Name   string `gorm:"size:255;not null" json:"name"`

	// Relationships
	Plan    Plan         `gorm:"foreignKey:PlanID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Recipes []MenuRecipe `gorm:"foreignKey:MenuID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"recipes,omitempty"`
}
