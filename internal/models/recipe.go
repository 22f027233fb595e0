package models

type Recipe struct {
	BaseModel

	Name            string `gorm:"size:255;not null" json:"name"`
	Description     string `gorm:"type:text" json:"description"`
	Instructions    string `gorm:"type:text" json:"instructions"`
	Difficulty      string `gorm:"size:50" json:"difficulty"`
	PreparationTime int    `gorm:"not null" json:"preparation_time"`
	IsPublic        bool   `json:"is_public"`

	// Relationships
	Categories  []RecipeCategory   `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"categories,omitempty"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"ingredients,omitempty"`
	Menus       []MenuRecipe       `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"menus,omitempty"`
	Users       []UserRecipe       `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"users,omitempty"`
}
