package repository

import (
	"context"

	"github.com/jhoicas/production-stock-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para movimientos de
// stock. Create asigna CreatedAt en el servidor de base de datos y lo deja en
// el entity. Los movimientos son append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	List(ctx context.Context, limit, offset int) ([]*entity.StockMovement, error)
}
