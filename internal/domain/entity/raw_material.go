package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterial representa una materia prima consumida por la producción.
// StockQuantity se actualiza únicamente vía movimientos de stock.
type RawMaterial struct {
	ID            string
	Code          string // código único
	Name          string
	StockQuantity decimal.Decimal // saldo actual (3 decimales, no negativo)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Balance devuelve el saldo actual de la materia prima.
func (m *RawMaterial) Balance() decimal.Decimal { return m.StockQuantity }

// SetBalance fija el saldo de la materia prima.
func (m *RawMaterial) SetBalance(q decimal.Decimal) { m.StockQuantity = q }
