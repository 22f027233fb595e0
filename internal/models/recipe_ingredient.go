package models

type RecipeIngredient struct {
	BaseModel

	RecipeID     uint   `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID uint   `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Quantity     string `gorm:"size:50;not null" json:"quantity"`
	UnitID       uint   `gorm:"not null;index" json:"unit_id"`

	// Relationships
	Recipe     Recipe     `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT" json:"-"`
	Unit       Unit       `gorm:"foreignKey:UnitID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT" json:"-"`
}
