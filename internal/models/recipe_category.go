package models

type RecipeCategory struct {
	BaseModel

	RecipeID   uint `gorm:"not null;uniqueIndex:idx_recipe_category" json:"recipe_id"`
	CategoryID uint `gorm:"not null;uniqueIndex:idx_recipe_category" json:"category_id"`

	// Relationships
	Recipe   Recipe   `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
