package models

type MenuRecipe struct {
	BaseModel

	MenuID   uint `gorm:"not null;uniqueIndex:idx_menu_recipe" json:"menu_id"`
	RecipeID uint `gorm:"not null;uniqueIndex:idx_menu_recipe" json:"recipe_id"`

	// Relationships
	Menu   Menu   `gorm:"foreignKey:MenuID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
