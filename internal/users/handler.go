package users

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Prajnahr-rao/green-volt-app/internal/auth"
	"github.com/Prajnahr-rao/green-volt-app/internal/validate"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name, email and password are required")
	}
	if !validate.Email(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid email format")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	ctx := userContext(c)

	exists, err := h.Repo.EmailExists(ctx, req.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if exists {
		return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
	}

	role := req.Role
	if role == "" {
		role = "User"
	}

	id, err := h.Repo.Insert(ctx, req.Name, req.Email, hashed, role)
	if err != nil {
		// Two concurrent registrations can both pass the pre-check; the
		// UNIQUE constraint catches the loser here.
		if errors.Is(err, ErrEmailTaken) {
			return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(RegisterResponse{
		ID:      id,
		Message: "Registration successful",
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
	}

	user, err := h.Repo.GetByEmail(userContext(c), req.Email)
	if err != nil {
		// Unknown email and wrong password answer identically so the
		// response does not leak which accounts exist.
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	return c.JSON(PublicUser{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	})
}

func (h *Handler) List(c *fiber.Ctx) error {
	list, err := h.Repo.List(userContext(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(list)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if req.Name == "" || req.Email == "" || req.Role == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name, email and role are required")
	}
	if !validate.Email(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid email format")
	}

	ctx := userContext(c)

	taken, err := h.Repo.EmailTakenByOther(ctx, req.Email, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if taken {
		return fiber.NewError(fiber.StatusBadRequest, "Email already taken by another user")
	}

	if err := h.Repo.Update(ctx, id, req.Name, req.Email, req.Role); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	user, err := h.Repo.GetPublicByID(ctx, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(user)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	if err := h.Repo.Delete(userContext(c), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
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
