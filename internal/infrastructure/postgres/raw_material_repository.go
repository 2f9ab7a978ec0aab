package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/production-stock-api/internal/domain"
	"github.com/jhoicas/production-stock-api/internal/domain/entity"
	"github.com/jhoicas/production-stock-api/internal/domain/repository"
)

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

// RawMaterialRepo implementación del puerto RawMaterialRepository sobre
// PostgreSQL (usable con pool o tx).
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository construye el adaptador de persistencia para
// materias primas. Pasar pool o tx (Querier).
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

const rawMaterialColumns = `id, code, name, stock_quantity, created_at, updated_at`

// Create persiste una nueva materia prima.
func (r *RawMaterialRepo) Create(ctx context.Context, material *entity.RawMaterial) error {
	query := `
		INSERT INTO raw_materials (id, code, name, stock_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		material.ID, material.Code, material.Name, material.StockQuantity,
		material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert raw material: %w", err)
	}
	return nil
}

// GetByID obtiene una materia prima por ID. Devuelve nil si no existe.
func (r *RawMaterialRepo) GetByID(ctx context.Context, id string) (*entity.RawMaterial, error) {
	return r.scanOne(r.q.QueryRow(ctx,
		`SELECT `+rawMaterialColumns+` FROM raw_materials WHERE id = $1`, id), "get raw material")
}

// GetByCode obtiene una materia prima por código único.
func (r *RawMaterialRepo) GetByCode(ctx context.Context, code string) (*entity.RawMaterial, error) {
	return r.scanOne(r.q.QueryRow(ctx,
		`SELECT `+rawMaterialColumns+` FROM raw_materials WHERE code = $1`, code), "get raw material by code")
}

// GetForUpdate obtiene la materia prima y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *RawMaterialRepo) GetForUpdate(ctx context.Context, id string) (*entity.RawMaterial, error) {
	return r.scanOne(r.q.QueryRow(ctx,
		`SELECT `+rawMaterialColumns+` FROM raw_materials WHERE id = $1 FOR UPDATE`, id), "get raw material for update")
}

// List lista todas las materias primas ordenadas por código.
func (r *RawMaterialRepo) List(ctx context.Context) ([]*entity.RawMaterial, error) {
	rows, err := r.q.Query(ctx, `SELECT `+rawMaterialColumns+` FROM raw_materials ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.RawMaterial
	for rows.Next() {
		var m entity.RawMaterial
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.StockQuantity, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// UpdateStock escribe el nuevo saldo de la materia prima. Invocar solo desde
// el procesador de movimientos, en la misma tx que inserta el movimiento.
func (r *RawMaterialRepo) UpdateStock(ctx context.Context, id string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE raw_materials SET stock_quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update raw material stock: %w", err)
	}
	return nil
}

// Delete elimina una materia prima por ID; las relaciones BOM caen por cascada FK.
func (r *RawMaterialRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM raw_materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete raw material: %w", err)
	}
	return nil
}

func (r *RawMaterialRepo) scanOne(row pgx.Row, op string) (*entity.RawMaterial, error) {
	var m entity.RawMaterial
	err := row.Scan(&m.ID, &m.Code, &m.Name, &m.StockQuantity, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}
