package api

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cadastromunicipal.com/internal/api/middleware"
	"cadastromunicipal.com/internal/domain"
)

// UserHandler handles account info, credential rotation and the admin
// account-management surface.
type UserHandler struct {
	userSvc domain.UserService
}

func NewUserHandler(userSvc domain.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Me returns the authenticated account. The password hash never appears in
// the response (json:"-" on the model).
// GET /api/user/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	id, ok := c.Locals(middleware.LocalUserID).(uint)
	if !ok || id == 0 {
		return handleError(c, domain.NewBadRequestError("BAD_REQUEST"))
	}

	user, err := h.userSvc.GetByID(context.Background(), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(user)
}

type changePasswordRequest struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

// ChangePassword rotates the caller's credential. The precondition order
// lives in the service; the session email goes in as-is, empty or not.
// POST /api/user/change-password
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "BAD_REQUEST"})
	}

	email, _ := c.Locals(middleware.LocalUserEmail).(string)
	if err := h.userSvc.ChangePassword(context.Background(), email, req.CurrentPassword, req.NewPassword, req.ConfirmNewPassword); err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Senha alterada com sucesso."})
}

// ListUsers returns every staff account.
// GET /api/users (admin)
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userSvc.ListUsers(context.Background())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(users)
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateUser registers a staff account.
// POST /api/users (admin)
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "BAD_REQUEST"})
	}

	user, err := h.userSvc.CreateUser(context.Background(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

// UpdateRole reassigns an account's role.
// PUT /api/users/:id/role (super-admin)
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return handleError(c, domain.NewBadRequestError("BAD_REQUEST"))
	}

	var req updateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "BAD_REQUEST"})
	}

	user, err := h.userSvc.UpdateRole(context.Background(), uint(id), req.Role)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(user)
}
