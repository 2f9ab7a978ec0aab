package production

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/production-stock-api/internal/application/dto"
	"github.com/jhoicas/production-stock-api/internal/domain/repository"
)

// SuggestionUseCase carga productos, materias primas y BOM desde persistencia
// y delega en Suggest. Solo lectura: el consumo de materia prima del cálculo
// es una proyección de planeación, nunca se persiste.
type SuggestionUseCase struct {
	productRepo  repository.ProductRepository
	materialRepo repository.RawMaterialRepository
	bomRepo      repository.BOMLinkRepository
	reports      ReportGenerator
}

// NewSuggestionUseCase construye el caso de uso. reports puede ser nil si no
// se expone el reporte PDF.
func NewSuggestionUseCase(
	productRepo repository.ProductRepository,
	materialRepo repository.RawMaterialRepository,
	bomRepo repository.BOMLinkRepository,
	reports ReportGenerator,
) *SuggestionUseCase {
	return &SuggestionUseCase{
		productRepo:  productRepo,
		materialRepo: materialRepo,
		bomRepo:      bomRepo,
		reports:      reports,
	}
}

// Suggest calcula la sugerencia de producción sobre el estado actual.
func (uc *SuggestionUseCase) Suggest(ctx context.Context) (*dto.ProductionSuggestionResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	materials, err := uc.materialRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	links, err := uc.bomRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Suggest(products, materials, links), nil
}

// SuggestPDF calcula la sugerencia y la renderiza como reporte PDF.
func (uc *SuggestionUseCase) SuggestPDF(ctx context.Context) ([]byte, error) {
	if uc.reports == nil {
		return nil, errors.New("generador de reportes no configurado")
	}
	suggestion, err := uc.Suggest(ctx)
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateSuggestionPDF(ctx, suggestion, time.Now())
}
