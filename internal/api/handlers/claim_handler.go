package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/claim"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	ClaimHandler interface {
		ClaimFoodItem(c *fiber.Ctx) error
	}

	claimHandler struct {
		claimService claim.ClaimService
	}
)

func NewClaimHandler(claimService claim.ClaimService) ClaimHandler {
	return &claimHandler{claimService: claimService}
}

func (h *claimHandler) ClaimFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	foodItemID := c.Params("id")

	res, err := h.claimService.ClaimFoodItem(c.Context(), foodItemID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemNotAvailable) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedClaimFoodItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedClaimFoodItem, domain.ErrInternalServer)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessClaimFoodItem)
}
