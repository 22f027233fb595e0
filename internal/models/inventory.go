package models

import "gorm.io/datatypes"

type Inventory struct {
	BaseModel

	UserID         uint            `gorm:"not null;index" json:"user_id"`
	IngredientID   uint            `gorm:"not null;index" json:"ingredient_id"`
	Quantity       string          `gorm:"size:50;not null" json:"quantity"`
	UnitID         uint            `gorm:"not null;index" json:"unit_id"`
	ExpirationDate *datatypes.Date `json:"expiration_date"`

	// Relationships
	User       User       `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT" json:"-"`
	Unit       Unit       `gorm:"foreignKey:UnitID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT" json:"-"`
}
