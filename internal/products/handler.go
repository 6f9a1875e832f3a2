package products

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) List(c *fiber.Ctx) error {
	list, err := h.Repo.List(userContext(c))
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch products")
	}

	out := make([]Response, 0, len(list))
	for i := range list {
		out = append(out, project(&list[i]))
	}
	return c.JSON(out)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if req.Name == "" || req.Price == nil || *req.Price == 0 || req.Category == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name, price, and category are required")
	}

	ctx := userContext(c)

	id, err := h.Repo.Insert(ctx, &req)
	if err != nil {
		log.Printf("Error adding product: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add product")
	}

	product, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching new product: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch new product")
	}
	return c.Status(fiber.StatusCreated).JSON(project(product))
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Product not found")
	}

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if req.Name == "" || req.Price == nil || *req.Price == 0 || req.Category == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name, price, and category are required")
	}

	ctx := userContext(c)

	if err := h.Repo.Update(ctx, id, &req); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		log.Printf("Error updating product: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update product")
	}

	product, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching updated product: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch updated product")
	}
	return c.JSON(project(product))
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Product not found")
	}

	if err := h.Repo.Delete(userContext(c), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		log.Printf("Error deleting product: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete product")
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
