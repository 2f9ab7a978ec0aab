package repository

import (
	"context"

	"github.com/jhoicas/production-stock-api/internal/domain/entity"
)

// BOMLinkRepository define el puerto de persistencia para la lista de
// materiales (product_raw_materials). Create devuelve domain.ErrDuplicate si
// ya existe el par (product_id, raw_material_id).
type BOMLinkRepository interface {
	Create(ctx context.Context, link *entity.BOMLink) error
	GetByID(ctx context.Context, id string) (*entity.BOMLink, error)
	List(ctx context.Context) ([]*entity.BOMLink, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.BOMLink, error)
	Delete(ctx context.Context, id string) error
}
