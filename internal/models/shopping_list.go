package models

type ShoppingList struct {
	BaseModel

	UserID      uint `gorm:"not null;index" json:"user_id"`
	IsCompleted bool `json:"is_completed"`

	// Relationships
	User  User               `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Items []ShoppingListItem `gorm:"foreignKey:ListID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"items,omitempty"`
}
