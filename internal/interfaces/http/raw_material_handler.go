package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/production-stock-api/internal/application/dto"
	"github.com/jhoicas/production-stock-api/internal/application/usecase"
	"github.com/jhoicas/production-stock-api/internal/domain"
)

// RawMaterialHandler maneja las peticiones HTTP para RawMaterial (protegido).
type RawMaterialHandler struct {
	uc *usecase.RawMaterialUseCase
}

// NewRawMaterialHandler construye el handler.
func NewRawMaterialHandler(uc *usecase.RawMaterialUseCase) *RawMaterialHandler {
	return &RawMaterialHandler{uc: uc}
}

// Create godoc
// @Summary      Crear materia prima
// @Tags         raw-materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRawMaterialRequest  true  "Datos de la materia prima"
// @Success      201   {object}  dto.RawMaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/raw-materials [post]
func (h *RawMaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRawMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código ya existe"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y name son requeridos; stock no negativo"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener materia prima por ID
// @Tags         raw-materials
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la materia prima"
// @Success      200  {object}  dto.RawMaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id} [get]
func (h *RawMaterialHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "materia prima no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar materias primas
// @Tags         raw-materials
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RawMaterialListResponse
// @Router       /api/raw-materials [get]
func (h *RawMaterialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar materia prima
// @Description  Elimina la materia prima y, en cascada, sus relaciones BOM.
// @Tags         raw-materials
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la materia prima"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id} [delete]
func (h *RawMaterialHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "materia prima no encontrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "materia prima eliminada"})
}
