package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/stock-movements.
type RegisterMovementRequest struct {
	ItemType string          `json:"item_type" validate:"required,oneof=product raw_material"`
	ItemID   string          `json:"item_id" validate:"required"`
	Type     string          `json:"movement_type" validate:"required,oneof=in out adjust"`
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
	Reason   string          `json:"reason"`
}

// StockMovementResponse salida de un movimiento persistido.
type StockMovementResponse struct {
	ID        string          `json:"id"`
	ItemType  string          `json:"item_type"`
	ItemID    string          `json:"item_id"`
	Type      string          `json:"movement_type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// StockMovementListResponse lista paginada de movimientos (created_at desc).
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
