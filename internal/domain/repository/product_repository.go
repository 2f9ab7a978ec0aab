package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/production-stock-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateStock solo debe invocarse desde el procesador de movimientos, dentro
// de la misma transacción que inserta el movimiento.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	UpdateStock(ctx context.Context, id string, quantity decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}
