package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/production-stock-api/internal/domain/entity"
	"github.com/jhoicas/production-stock-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// Los movimientos son append-only: solo INSERT y SELECT.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento. created_at lo asigna la base de datos
// (now()) y queda escrito en movement.CreatedAt.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, item_type, item_id, movement_type, quantity, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`
	reason := (*string)(nil)
	if movement.Reason != "" {
		reason = &movement.Reason
	}
	err := r.q.QueryRow(ctx, query,
		movement.ID, movement.ItemType, movement.ItemID, movement.Type, movement.Quantity, reason,
	).Scan(&movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil si no existe.
func (r *StockMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	query := `
		SELECT id, item_type, item_id, movement_type, quantity, reason, created_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	var reason *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.ItemType, &m.ItemID, &m.Type, &m.Quantity, &reason, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	if reason != nil {
		m.Reason = *reason
	}
	return &m, nil
}

// List lista movimientos ordenados por created_at descendente.
func (r *StockMovementRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, item_type, item_id, movement_type, quantity, reason, created_at
		FROM stock_movements ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var reason *string
		if err := rows.Scan(&m.ID, &m.ItemType, &m.ItemID, &m.Type, &m.Quantity, &reason, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if reason != nil {
			m.Reason = *reason
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
