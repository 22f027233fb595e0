package models

type IngredientCategory struct {
	BaseModel

	Name        string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Relationships
	Ingredients []Ingredient `gorm:"foreignKey:CategoryID" json:"ingredients,omitempty"`
}
