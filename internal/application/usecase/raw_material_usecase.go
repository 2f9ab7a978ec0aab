package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/production-stock-api/internal/application/dto"
	"github.com/jhoicas/production-stock-api/internal/domain"
	"github.com/jhoicas/production-stock-api/internal/domain/entity"
	"github.com/jhoicas/production-stock-api/internal/domain/repository"
)

// RawMaterialUseCase casos de uso CRUD para materias primas.
type RawMaterialUseCase struct {
	repo repository.RawMaterialRepository
}

// NewRawMaterialUseCase construye el caso de uso.
func NewRawMaterialUseCase(repo repository.RawMaterialRepository) *RawMaterialUseCase {
	return &RawMaterialUseCase{repo: repo}
}

// Create crea una materia prima. El código debe ser único.
func (uc *RawMaterialUseCase) Create(ctx context.Context, in dto.CreateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(ctx, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	material := &entity.RawMaterial{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Name:          in.Name,
		StockQuantity: in.StockQuantity.Round(3),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, material); err != nil {
		return nil, err
	}
	return toRawMaterialResponse(material), nil
}

// GetByID obtiene una materia prima por ID. Devuelve nil si no existe.
func (uc *RawMaterialUseCase) GetByID(ctx context.Context, id string) (*dto.RawMaterialResponse, error) {
	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	return toRawMaterialResponse(material), nil
}

// List lista todas las materias primas.
func (uc *RawMaterialUseCase) List(ctx context.Context) (*dto.RawMaterialListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RawMaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toRawMaterialResponse(m))
	}
	return &dto.RawMaterialListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina una materia prima; sus relaciones BOM caen en cascada.
func (uc *RawMaterialUseCase) Delete(ctx context.Context, id string) error {
	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toRawMaterialResponse(m *entity.RawMaterial) *dto.RawMaterialResponse {
	return &dto.RawMaterialResponse{
		ID:            m.ID,
		Code:          m.Code,
		Name:          m.Name,
		StockQuantity: m.StockQuantity,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
