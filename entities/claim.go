package entities

import (
	"github.com/google/uuid"
)

type Claim struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodItemID  uuid.UUID `gorm:"not null" json:"food_item_id"`
	RecipientID uuid.UUID `gorm:"not null" json:"recipient_id"`
	Status      string    `gorm:"default:pending" json:"status"` // pending, approved, rejected

	FoodItem  *FoodItem `gorm:"foreignKey:FoodItemID"`
	Recipient *User     `gorm:"foreignKey:RecipientID"`
	Timestamp
}
