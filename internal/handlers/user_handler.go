package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"inventaris/internal/services"
)

// UserHandler handles HTTP requests for user lookup.
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the user routes with the Fiber app. They are
// expected to be mounted behind the auth middleware.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/:id", h.HandleGetByID)
}

// HandleGetByID returns the public projection of a user.
func (h *UserHandler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
		})
	}

	user, err := h.authService.GetUserByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}
