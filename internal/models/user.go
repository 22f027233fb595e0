package models

type User struct {
	BaseModel

	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password     string `gorm:"size:255;not null" json:"-"`
	ProfilePhoto string `gorm:"size:255" json:"profile_photo"`
	AccountType  string `gorm:"size:255" json:"account_type"`
	RoleID       uint   `gorm:"not null;index" json:"role_id"`

	// Relationships
	Role          Role           `gorm:"foreignKey:RoleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Groups        []UserGroup    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"groups,omitempty"`
	Recipes       []UserRecipe   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"recipes,omitempty"`
	Inventories   []Inventory    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"inventories,omitempty"`
	Plans         []Plan         `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"plans,omitempty"`
	ShoppingLists []ShoppingList `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"shopping_lists,omitempty"`
	Notifications []Notification `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"notifications,omitempty"`
}
