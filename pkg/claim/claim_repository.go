package claim

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ClaimRepository interface {
		ClaimFoodItem(ctx context.Context, foodItemID, recipientID uuid.UUID) (*entities.Claim, error)
		GetClaimsByRecipient(ctx context.Context, recipientID string) ([]*entities.Claim, error)
	}

	claimRepository struct {
		db *gorm.DB
	}
)

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) ClaimFoodItem(ctx context.Context, foodItemID, recipientID uuid.UUID) (*entities.Claim, error) {
	claim := &entities.Claim{
		ID:          uuid.New(),
		FoodItemID:  foodItemID,
		RecipientID: recipientID,
		Status:      domain.ClaimStatusPending,
	}

	// The status flip and the claim insert run in one transaction. The
	// conditional update only succeeds for the request that finds the item
	// still available, so two concurrent claims can never both insert.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.FoodItem{}).
			Where("id = ? AND status = ?", foodItemID, domain.FoodStatusAvailable).
			Update("status", domain.FoodStatusClaimed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrFoodItemNotAvailable
		}

		return tx.Create(claim).Error
	})
	if err != nil {
		return nil, err
	}

	return claim, nil
}

func (r *claimRepository) GetClaimsByRecipient(ctx context.Context, recipientID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim

	if err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Where("recipient_id = ?", recipientID).
		Order("created_at desc").
		Find(&claims).Error; err != nil {
		return nil, err
	}

	return claims, nil
}
