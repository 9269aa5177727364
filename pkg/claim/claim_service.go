package claim

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/utils/mailing"
	"FoodShare-Backend/pkg/food"
	"FoodShare-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ClaimService interface {
		ClaimFoodItem(ctx context.Context, foodItemID string, recipientID string) (domain.ClaimResponse, error)
		GetClaimedFoodItems(ctx context.Context, recipientID string) ([]domain.ClaimedFoodItem, error)
	}

	claimService struct {
		claimRepository ClaimRepository
		foodRepository  food.FoodRepository
		userRepository  user.UserRepository
	}
)

func NewClaimService(
	claimRepository ClaimRepository,
	foodRepository food.FoodRepository,
	userRepository user.UserRepository,
) ClaimService {
	return &claimService{
		claimRepository: claimRepository,
		foodRepository:  foodRepository,
		userRepository:  userRepository,
	}
}

func (s *claimService) ClaimFoodItem(ctx context.Context, foodItemID string, recipientID string) (domain.ClaimResponse, error) {
	foodUUID, err := uuid.Parse(foodItemID)
	if err != nil {
		return domain.ClaimResponse{}, domain.ErrFoodItemNotAvailable
	}

	recipientUUID, err := uuid.Parse(recipientID)
	if err != nil {
		return domain.ClaimResponse{}, domain.ErrParseUUID
	}

	claim, err := s.claimRepository.ClaimFoodItem(ctx, foodUUID, recipientUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ClaimResponse{}, domain.ErrFoodItemNotAvailable
		}
		return domain.ClaimResponse{}, err
	}

	// Best effort donor notification. A failed send never fails the claim.
	go s.notifyDonor(foodItemID)

	return domain.ClaimResponse{
		ID:          claim.ID.String(),
		FoodItemID:  claim.FoodItemID.String(),
		RecipientID: claim.RecipientID.String(),
		Status:      claim.Status,
		ClaimedAt:   claim.CreatedAt,
	}, nil
}

func (s *claimService) GetClaimedFoodItems(ctx context.Context, recipientID string) ([]domain.ClaimedFoodItem, error) {
	claims, err := s.claimRepository.GetClaimsByRecipient(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ClaimedFoodItem, 0, len(claims))
	for _, c := range claims {
		item := domain.ClaimedFoodItem{
			ClaimID:     c.ID.String(),
			ClaimStatus: c.Status,
			ClaimedAt:   c.CreatedAt,
		}
		if c.FoodItem != nil {
			item.FoodItemResponse = domain.FoodItemResponse{
				ID:          c.FoodItem.ID.String(),
				DonorID:     c.FoodItem.DonorID.String(),
				Title:       c.FoodItem.Title,
				Description: c.FoodItem.Description,
				Quantity:    c.FoodItem.Quantity,
				Location:    c.FoodItem.Location,
				ExpiryDate:  c.FoodItem.ExpiryDate,
				Allergens:   c.FoodItem.Allergens,
				Status:      c.FoodItem.Status,
				ImageURL:    c.FoodItem.ImageURL,
				CreatedAt:   c.FoodItem.CreatedAt,
			}
		}
		response = append(response, item)
	}

	return response, nil
}

func (s *claimService) notifyDonor(foodItemID string) {
	ctx := context.Background()

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, foodItemID)
	if err != nil {
		log.Printf("claim notification: food item lookup failed: %v", err)
		return
	}

	donor, err := s.userRepository.GetUserByID(ctx, foodItem.DonorID.String())
	if err != nil {
		log.Printf("claim notification: donor lookup failed: %v", err)
		return
	}

	subject := "Your food listing has been claimed"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your listing <b>%s</b> has been claimed. Please coordinate the handover with the recipient.</p>",
		donor.Name, foodItem.Title,
	)

	if err := mailing.SendMail(donor.Email, subject, body); err != nil {
		log.Printf("claim notification: send failed: %v", err)
	}
}
