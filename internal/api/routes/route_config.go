package routes

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/middleware"
	"FoodShare-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App          *fiber.App
	UserHandler  handlers.UserHandler
	FoodHandler  handlers.FoodHandler
	ClaimHandler handlers.ClaimHandler
	Middleware   middleware.Middleware
	JWTService   jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Food()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) Food() {
	food := c.App.Group("/api/food")
	{
		food.Get("", c.FoodHandler.GetFoodItems)
		food.Post("",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.OnlyRole(domain.RoleDonor),
			c.FoodHandler.CreateFoodItem,
		)
		food.Post("/:id/claim",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.OnlyRole(domain.RoleRecipient),
			c.ClaimHandler.ClaimFoodItem,
		)
		food.Post("/:id/image",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.OnlyRole(domain.RoleDonor),
			c.FoodHandler.UploadFoodImage,
		)
	}

	c.App.Get("/api/my-food", c.Middleware.AuthMiddleware(c.JWTService), c.FoodHandler.GetMyFood)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "service": "FoodShare Backend"})
	})
}
