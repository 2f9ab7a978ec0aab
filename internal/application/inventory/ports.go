package inventory

import (
	"context"

	"github.com/jhoicas/production-stock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la inserción del movimiento y la
// escritura del saldo se confirmen o reviertan juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		materialRepo repository.RawMaterialRepository,
	) error) error
}
