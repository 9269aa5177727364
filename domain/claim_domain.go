package domain

import (
	"errors"
	"time"
)

const (
	ClaimStatusPending  = "pending"
	ClaimStatusApproved = "approved"
	ClaimStatusRejected = "rejected"
)

var (
	MessageSuccessClaimFoodItem = "food item claimed successfully"

	MessageFailedClaimFoodItem = "failed to claim food item"

	ErrFoodItemNotAvailable = errors.New("food item not available")
)

type (
	ClaimResponse struct {
		ID          string    `json:"id"`
		FoodItemID  string    `json:"food_item_id"`
		RecipientID string    `json:"recipient_id"`
		Status      string    `json:"status"`
		ClaimedAt   time.Time `json:"claimed_at"`
	}

	// ClaimedFoodItem is a food item joined with the recipient's claim,
	// returned from the my-food endpoint for recipients.
	ClaimedFoodItem struct {
		FoodItemResponse
		ClaimID     string    `json:"claim_id"`
		ClaimStatus string    `json:"claim_status"`
		ClaimedAt   time.Time `json:"claimed_at"`
	}
)
