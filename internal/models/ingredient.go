package models

type Ingredient struct {
	BaseModel

	Name       string `gorm:"size:255;not null" json:"name"`
	CategoryID uint   `gorm:"not null;index" json:"category_id"`

	// Deleting an ingredient category with ingredients still in it is
	// rejected rather than cascaded; ingredients are shared reference
	// data, not owned by their category.
	Category IngredientCategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT" json:"-"`
}
