package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID     uuid.UUID `gorm:"not null" json:"donor_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Location    string    `gorm:"not null" json:"location"`
	ExpiryDate  time.Time `json:"expiry_date"`
	Allergens   string    `gorm:"type:text" json:"allergens,omitempty"`
	Status      string    `gorm:"default:available" json:"status"` // available, claimed, expired
	ImageURL    string    `json:"image_url,omitempty"`

	Donor  *User    `gorm:"foreignKey:DonorID"`
	Claims []*Claim `gorm:"foreignKey:FoodItemID"`
	Timestamp
}
