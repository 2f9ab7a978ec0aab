package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/production-stock-api/internal/application/production"
)

// ProductionHandler expone el cálculo de sugerencia de producción (protegido).
type ProductionHandler struct {
	uc *production.SuggestionUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.SuggestionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Suggest godoc
// @Summary      Calcular sugerencia de producción
// @Description  Cálculo greedy sobre el stock actual: productos ordenados por valor unitario descendente, unidades fabricables y valor total. No modifica stock.
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductionSuggestionResponse
// @Router       /api/production/suggestion [get]
func (h *ProductionHandler) Suggest(c *fiber.Ctx) error {
	out, err := h.uc.Suggest(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// SuggestPDF godoc
// @Summary      Descargar sugerencia de producción en PDF
// @Tags         production
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/production/suggestion/pdf [get]
func (h *ProductionHandler) SuggestPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.SuggestPDF(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	filename := fmt.Sprintf("sugerencia-produccion-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
