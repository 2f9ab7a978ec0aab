package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/production-stock-api/internal/application/dto"
	"github.com/jhoicas/production-stock-api/internal/domain"
	"github.com/jhoicas/production-stock-api/internal/domain/entity"
	"github.com/jhoicas/production-stock-api/internal/domain/repository"
)

// BOMUseCase casos de uso para la lista de materiales (relaciones
// producto - materia prima).
type BOMUseCase struct {
	bomRepo      repository.BOMLinkRepository
	productRepo  repository.ProductRepository
	materialRepo repository.RawMaterialRepository
}

// NewBOMUseCase construye el caso de uso.
func NewBOMUseCase(
	bomRepo repository.BOMLinkRepository,
	productRepo repository.ProductRepository,
	materialRepo repository.RawMaterialRepository,
) *BOMUseCase {
	return &BOMUseCase{bomRepo: bomRepo, productRepo: productRepo, materialRepo: materialRepo}
}

// Create relaciona un producto con una materia prima requerida. El par
// (product_id, raw_material_id) es único; repetirlo devuelve ErrDuplicate.
func (uc *BOMUseCase) Create(ctx context.Context, in dto.CreateBOMLinkRequest) (*dto.BOMLinkResponse, error) {
	if in.ProductID == "" || in.RawMaterialID == "" || in.QuantityRequired <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	material, err := uc.materialRepo.GetByID(ctx, in.RawMaterialID)
	if err != nil {
		return nil, err
	}
	if product == nil || material == nil {
		return nil, domain.ErrNotFound
	}
	link := &entity.BOMLink{
		ID:               uuid.New().String(),
		ProductID:        in.ProductID,
		RawMaterialID:    in.RawMaterialID,
		QuantityRequired: in.QuantityRequired,
	}
	if err := uc.bomRepo.Create(ctx, link); err != nil {
		return nil, err
	}
	return toBOMLinkResponse(link), nil
}

// List lista todas las relaciones.
func (uc *BOMUseCase) List(ctx context.Context) (*dto.BOMLinkListResponse, error) {
	list, err := uc.bomRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BOMLinkResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toBOMLinkResponse(l))
	}
	return &dto.BOMLinkListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina una relación por ID.
func (uc *BOMUseCase) Delete(ctx context.Context, id string) error {
	link, err := uc.bomRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if link == nil {
		return domain.ErrNotFound
	}
	return uc.bomRepo.Delete(ctx, id)
}

func toBOMLinkResponse(l *entity.BOMLink) *dto.BOMLinkResponse {
	return &dto.BOMLinkResponse{
		ID:               l.ID,
		ProductID:        l.ProductID,
		RawMaterialID:    l.RawMaterialID,
		QuantityRequired: l.QuantityRequired,
	}
}
