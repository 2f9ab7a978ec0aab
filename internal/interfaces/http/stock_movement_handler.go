package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/production-stock-api/internal/application/dto"
	"github.com/jhoicas/production-stock-api/internal/application/inventory"
	"github.com/jhoicas/production-stock-api/internal/domain"
)

// StockMovementHandler maneja el registro y consulta de movimientos (protegido).
type StockMovementHandler struct {
	register *inventory.RegisterMovementUseCase
	list     *inventory.ListMovementsUseCase
}

// NewStockMovementHandler construye el handler.
func NewStockMovementHandler(register *inventory.RegisterMovementUseCase, list *inventory.ListMovementsUseCase) *StockMovementHandler {
	return &StockMovementHandler{register: register, list: list}
}

// Register godoc
// @Summary      Registrar movimiento de stock
// @Description  Aplica in (entrada), out (salida, requiere saldo suficiente) o adjust (fija el saldo) sobre un producto o materia prima.
// @Tags         stock-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "item_type, item_id, movement_type, quantity (> 0), reason"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-movements [post]
func (h *StockMovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.register.RegisterMovement(c.Context(), in)
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			// Incluye saldo actual y solicitado para que el cliente sepa
			// cuánto falta.
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insufficient.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_type, item_id, movement_type válidos y quantity > 0 son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos de stock
// @Description  Historial de movimientos, más recientes primero.
// @Tags         stock-movements
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 50)"
// @Param        offset  query  int  false  "Desplazamiento (default 0)"
// @Success      200  {object}  dto.StockMovementListResponse
// @Router       /api/stock-movements [get]
func (h *StockMovementHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	out, err := h.list.List(c.Context(), page)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
