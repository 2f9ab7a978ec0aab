package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/production-stock-api/internal/domain"
	"github.com/jhoicas/production-stock-api/internal/domain/entity"
	"github.com/jhoicas/production-stock-api/internal/domain/repository"
)

var _ repository.BOMLinkRepository = (*BOMLinkRepo)(nil)

// BOMLinkRepo implementación del puerto BOMLinkRepository sobre PostgreSQL
// (usable con pool o tx).
type BOMLinkRepo struct {
	q Querier
}

// NewBOMLinkRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBOMLinkRepository(q Querier) *BOMLinkRepo {
	return &BOMLinkRepo{q: q}
}

// Create persiste una relación producto-materia prima. El constraint único
// sobre (product_id, raw_material_id) se mapea a domain.ErrDuplicate.
func (r *BOMLinkRepo) Create(ctx context.Context, link *entity.BOMLink) error {
	query := `
		INSERT INTO product_raw_materials (id, product_id, raw_material_id, quantity_required)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, link.ID, link.ProductID, link.RawMaterialID, link.QuantityRequired)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bom link: %w", err)
	}
	return nil
}

// GetByID obtiene una relación por ID. Devuelve nil si no existe.
func (r *BOMLinkRepo) GetByID(ctx context.Context, id string) (*entity.BOMLink, error) {
	query := `
		SELECT id, product_id, raw_material_id, quantity_required
		FROM product_raw_materials WHERE id = $1`
	var l entity.BOMLink
	err := r.q.QueryRow(ctx, query, id).Scan(&l.ID, &l.ProductID, &l.RawMaterialID, &l.QuantityRequired)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bom link: %w", err)
	}
	return &l, nil
}

// List lista todas las relaciones.
func (r *BOMLinkRepo) List(ctx context.Context) ([]*entity.BOMLink, error) {
	return r.list(ctx, `
		SELECT id, product_id, raw_material_id, quantity_required
		FROM product_raw_materials`)
}

// ListByProduct lista las relaciones de un producto.
func (r *BOMLinkRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.BOMLink, error) {
	return r.list(ctx, `
		SELECT id, product_id, raw_material_id, quantity_required
		FROM product_raw_materials WHERE product_id = $1`, productID)
}

// Delete elimina una relación por ID.
func (r *BOMLinkRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM product_raw_materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bom link: %w", err)
	}
	return nil
}

func (r *BOMLinkRepo) list(ctx context.Context, query string, args ...any) ([]*entity.BOMLink, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bom links: %w", err)
	}
	defer rows.Close()
	var list []*entity.BOMLink
	for rows.Next() {
		var l entity.BOMLink
		if err := rows.Scan(&l.ID, &l.ProductID, &l.RawMaterialID, &l.QuantityRequired); err != nil {
			return nil, fmt.Errorf("scan bom link: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
