package services

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
		log.Printf("Error fetching services: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch services")
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

	if req.Name == "" || req.Price == nil || *req.Price == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Name and price are required")
	}

	ctx := userContext(c)

	id, err := h.Repo.Insert(ctx, &req)
	if err != nil {
		log.Printf("Error adding service: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add service")
	}

	service, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching added service: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch added service")
	}
	return c.Status(fiber.StatusCreated).JSON(project(service))
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Service not found")
	}

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if req.Name == "" || req.Price == nil || *req.Price == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Name and price are required")
	}

	ctx := userContext(c)

	if err := h.Repo.Update(ctx, id, &req); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}
		log.Printf("Error updating service: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update service")
	}

	service, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching updated service: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch updated service")
	}
	return c.JSON(project(service))
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Service not found")
	}

	if err := h.Repo.Delete(userContext(c), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}
		log.Printf("Error deleting service: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete service")
	}
	return c.JSON(fiber.Map{"message": "Service deleted successfully"})
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
