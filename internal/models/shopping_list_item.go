package models

type ShoppingListItem struct {
	BaseModel

	ListID       uint   `gorm:"not null;uniqueIndex:idx_list_ingredient" json:"list_id"`
	IngredientID uint   `gorm:"not null;uniqueIndex:idx_list_ingredient" json:"ingredient_id"`
	Quantity     string `gorm:"size:50;not null" json:"quantity"`
	UnitID       uint   `gorm:"not null;index" json:"unit_id"`
	Status       string `gorm:"size:50" json:"status"` // "pending", "purchased"

	// Relationships
	List       ShoppingList `gorm:"foreignKey:ListID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Ingredient Ingredient   `gorm:"foreignKey:IngredientID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT" json:"-"`
	Unit       Unit         `gorm:"foreignKey:UnitID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT" json:"-"`
}
