package models

// Unit is a unit of measure (gram, liter, ...). Units are referenced
// wherever a quantity appears and are never deleted while in use.
type Unit struct {
	BaseModel

	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}
