package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/production-stock-api/internal/application/dto"
	"github.com/jhoicas/production-stock-api/internal/application/usecase"
	"github.com/jhoicas/production-stock-api/internal/domain"
)

// BOMHandler maneja las relaciones producto - materia prima (protegido).
type BOMHandler struct {
	uc *usecase.BOMUseCase
}

// NewBOMHandler construye el handler.
func NewBOMHandler(uc *usecase.BOMUseCase) *BOMHandler {
	return &BOMHandler{uc: uc}
}

// Create godoc
// @Summary      Crear relación producto - materia prima
// @Description  El par (product_id, raw_material_id) es único.
// @Tags         bom
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBOMLinkRequest  true  "product_id, raw_material_id, quantity_required (> 0)"
// @Success      201   {object}  dto.BOMLinkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/product-raw-materials [post]
func (h *BOMHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBOMLinkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, raw_material_id y quantity_required > 0 son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o materia prima no encontrado"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la relación ya existe para ese producto y materia prima"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar relaciones producto - materia prima
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BOMLinkListResponse
// @Router       /api/product-raw-materials [get]
func (h *BOMHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar relación
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la relación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-raw-materials/{id} [delete]
func (h *BOMHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "relación no encontrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "relación eliminada"})
}
