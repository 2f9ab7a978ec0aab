package production

import (
	"context"
	"time"

	"github.com/jhoicas/production-stock-api/internal/application/dto"
)

// ReportGenerator genera la representación en PDF de una sugerencia de
// producción (puerto hacia infraestructura).
type ReportGenerator interface {
	GenerateSuggestionPDF(ctx context.Context, suggestion *dto.ProductionSuggestionResponse, generatedAt time.Time) ([]byte, error)
}
