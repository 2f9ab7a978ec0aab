package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto terminado. Value es el valor unitario de venta;
// StockQuantity es el saldo actual, actualizado únicamente vía movimientos de stock.
type Product struct {
	ID            string
	Code          string // código único
	Name          string
	Value         decimal.Decimal // valor unitario (2 decimales)
	StockQuantity decimal.Decimal // saldo actual (3 decimales, no negativo)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Balance devuelve el saldo actual del producto.
func (p *Product) Balance() decimal.Decimal { return p.StockQuantity }

// SetBalance fija el saldo del producto.
func (p *Product) SetBalance(q decimal.Decimal) { p.StockQuantity = q }
