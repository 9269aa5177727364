package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"not null" json:"role"` // donor, recipient
	Location  string    `json:"location,omitempty"`
	Allergies string    `gorm:"type:text" json:"allergies,omitempty"`

	FoodItems []*FoodItem `gorm:"foreignKey:DonorID"`
	Claims    []*Claim    `gorm:"foreignKey:RecipientID"`
	Timestamp
}
