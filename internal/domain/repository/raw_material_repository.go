package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/production-stock-api/internal/domain/entity"
)

// RawMaterialRepository define el puerto de persistencia para RawMaterial.
// Mismo contrato de UpdateStock que ProductRepository.
type RawMaterialRepository interface {
	Create(ctx context.Context, material *entity.RawMaterial) error
	GetByID(ctx context.Context, id string) (*entity.RawMaterial, error)
	GetByCode(ctx context.Context, code string) (*entity.RawMaterial, error)
	GetForUpdate(ctx context.Context, id string) (*entity.RawMaterial, error)
	List(ctx context.Context) ([]*entity.RawMaterial, error)
	UpdateStock(ctx context.Context, id string, quantity decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}
