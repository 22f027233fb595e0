package models

// UserRecipe associates a user with a recipe; is_owner marks the
// author as opposed to users the recipe was shared with.
type UserRecipe struct {
	BaseModel

	UserID   uint `gorm:"not null;uniqueIndex:idx_user_recipe" json:"user_id"`
	RecipeID uint `gorm:"not null;uniqueIndex:idx_user_recipe" json:"recipe_id"`
	IsOwner  bool `json:"is_owner"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
