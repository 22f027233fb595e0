package models

type Category struct {
	BaseModel

	Name        string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Relationships
	Recipes []RecipeCategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"recipes,omitempty"`
}
