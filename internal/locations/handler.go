package locations

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
		log.Printf("Error fetching locations: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch locations")
	}

	out := make([]ListResponse, 0, len(list))
	for i := range list {
		out = append(out, projectList(&list[i]))
	}
	return c.JSON(out)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if req.Address == "" || req.Country == "" || req.City == "" || req.State == "" ||
		req.Latitude == nil || *req.Latitude == 0 ||
		req.Longitude == nil || *req.Longitude == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "All fields are required")
	}

	ctx := userContext(c)

	id, err := h.Repo.Insert(ctx, &req)
	if err != nil {
		log.Printf("Error adding location: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add location")
	}

	location, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching added location: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch added location")
	}
	return c.Status(fiber.StatusCreated).JSON(projectDetail(location))
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Location not found")
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if req.Address == "" ||
		req.Latitude == nil || *req.Latitude == 0 ||
		req.Longitude == nil || *req.Longitude == 0 ||
		req.ContactNumber == "" || req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "All fields are required")
	}

	ctx := userContext(c)

	if err := h.Repo.Update(ctx, id, &req); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Location not found")
		}
		log.Printf("Error updating location: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update location")
	}

	location, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching updated location: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch updated location")
	}
	return c.JSON(projectDetail(location))
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Location not found")
	}

	if err := h.Repo.Delete(userContext(c), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Location not found")
		}
		log.Printf("Error deleting location: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete location")
	}
	return c.JSON(fiber.Map{"message": "Location deleted successfully"})
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
