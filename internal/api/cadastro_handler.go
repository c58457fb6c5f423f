package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"cadastromunicipal.com/internal/domain"
	"cadastromunicipal.com/internal/model"
)

// CadastroHandler handles the registration-record HTTP surface.
type CadastroHandler struct {
	cadastroSvc domain.CadastroService
}

func NewCadastroHandler(cadastroSvc domain.CadastroService) *CadastroHandler {
	return &CadastroHandler{cadastroSvc: cadastroSvc}
}

// Store receives the public intake form. No session required.
// POST /api/cadastro
func (h *CadastroHandler) Store(c *fiber.Ctx) error {
	var input model.CadastroInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "BAD_REQUEST"})
	}

	if _, err := h.cadastroSvc.Create(context.Background(), &input); err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Cadastro criado com sucesso."})
}

// List returns every registration record.
// GET /api/cadastro
func (h *CadastroHandler) List(c *fiber.Ctx) error {
	cadastros, err := h.cadastroSvc.List(context.Background())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(cadastros)
}

// ByID returns one registration record.
// GET /api/cadastro/:id
func (h *CadastroHandler) ByID(c *fiber.Ctx) error {
	cadastro, err := h.cadastroSvc.GetByID(context.Background(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(cadastro)
}
