package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"inventaris/internal/models"
	"inventaris/internal/services"
)

// ProductHandler handles HTTP requests for product CRUD. All routes are
// mounted behind the auth middleware; the acting user comes from the
// resolved token, never from the request body.
type ProductHandler struct {
	productService *services.ProductService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Get("/:id", h.HandleGetByID)
	productRoutes.Put("/:id", h.HandleUpdate)
	productRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList returns every product visible to the caller.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	products, err := h.productService.List(callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGetByID returns a single product visible to the caller.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID",
		})
	}

	product, err := h.productService.GetByID(id, callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// ProductCreateRequest represents the request body for product creation.
// Price is decoded through decimal so amounts keep their exact value.
type ProductCreateRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stockCount" validate:"gte=0"`
}

// HandleCreate creates a product attributed to the caller.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	product, err := h.productService.Create(models.ProductCreate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}, callerID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// ProductUpdateRequest represents the request body for a partial update.
// Absent fields are left untouched.
type ProductUpdateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stockCount"`
}

// HandleUpdate applies a partial update to a product within the caller's
// scope.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID",
		})
	}

	var req ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	product, err := h.productService.Update(id, models.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}, callerID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(product)
}

// HandleDelete removes a product within the caller's scope.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID",
		})
	}

	if err := h.productService.Delete(id, callerID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
