package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRawMaterialRequest entrada para crear una materia prima.
type CreateRawMaterialRequest struct {
	Code          string          `json:"code" validate:"required,min=1,max=50"`
	Name          string          `json:"name" validate:"required,min=1,max=100"`
	StockQuantity decimal.Decimal `json:"stock_quantity"` // saldo inicial, opcional
}

// RawMaterialResponse salida de una materia prima.
type RawMaterialResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// RawMaterialListResponse lista de materias primas.
type RawMaterialListResponse struct {
	Items []RawMaterialResponse `json:"items"`
	Total int                   `json:"total"`
}
