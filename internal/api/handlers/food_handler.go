package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/claim"
	"FoodShare-Backend/pkg/food"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		CreateFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetMyFood(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService  food.FoodService
		claimService claim.ClaimService
		validator    *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, claimService claim.ClaimService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService:  foodService,
		claimService: claimService,
		validator:    validator,
	}
}

func (h *foodHandler) CreateFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFoodItem, err)
	}

	res, err := h.foodService.CreateFoodItem(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidExpiryDate) || errors.Is(err, domain.ErrInvalidQuantity) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFoodItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateFoodItem, domain.ErrInternalServer)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	location := c.Query("location")

	items, err := h.foodService.GetAvailableFoodItems(c.Context(), location)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodItems, domain.ErrInternalServer)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetMyFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)

	if role == domain.RoleDonor {
		items, err := h.foodService.GetDonorFoodItems(c.Context(), userID)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMyFood, domain.ErrInternalServer)
		}
		return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetMyFood)
	}

	items, err := h.claimService.GetClaimedFoodItems(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMyFood, domain.ErrInternalServer)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetMyFood)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadFoodImageRequest)
	req.FoodItemID = c.Params("id")

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	if err := h.foodService.UploadFoodImage(c.Context(), *req, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadImage, err)
		case errors.Is(err, domain.ErrUnauthorizedAccess):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedUploadImage, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadImage, domain.ErrInternalServer)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
