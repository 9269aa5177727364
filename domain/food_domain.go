package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	FoodStatusAvailable = "available"
	FoodStatusClaimed   = "claimed"
	FoodStatusExpired   = "expired"
)

var (
	MessageSuccessCreateFoodItem = "food item posted successfully"
	MessageSuccessGetFoodItems   = "food items retrieved successfully"
	MessageSuccessGetMyFood      = "your food items retrieved successfully"
	MessageSuccessUploadImage    = "food image uploaded successfully"

	MessageFailedCreateFoodItem = "failed to post food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"
	MessageFailedGetMyFood      = "failed to retrieve your food items"
	MessageFailedUploadImage    = "failed to upload food image"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrUnauthorizedAccess = errors.New("unauthorized access to food item")
)

type (
	CreateFoodItemRequest struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
		Quantity    int    `json:"quantity" validate:"required,min=1"`
		Location    string `json:"location" validate:"required"`
		ExpiryDate  string `json:"expiry_date" validate:"required"`
		Allergens   string `json:"allergens" validate:"omitempty"`
	}

	FoodItemResponse struct {
		ID          string    `json:"id"`
		DonorID     string    `json:"donor_id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Quantity    int       `json:"quantity"`
		Location    string    `json:"location"`
		ExpiryDate  time.Time `json:"expiry_date"`
		Allergens   string    `json:"allergens,omitempty"`
		Status      string    `json:"status"`
		ImageURL    string    `json:"image_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	ListFoodItemsRequest struct {
		Location string `json:"location" validate:"omitempty"`
	}

	UploadFoodImageRequest struct {
		FoodItemID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
