package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIn     = "in"     // entrada: saldo + cantidad
	MovementTypeOut    = "out"    // salida: saldo - cantidad, requiere saldo suficiente
	MovementTypeAdjust = "adjust" // ajuste: fija el saldo al valor absoluto
)

// StockMovement representa un movimiento de stock sobre un producto o una
// materia prima. Append-only: nunca se actualiza ni se borra. Quantity es
// siempre positiva; el signo/efecto lo define Type.
type StockMovement struct {
	ID        string
	ItemType  string // product | raw_material
	ItemID    string
	Type      string          // in | out | adjust
	Quantity  decimal.Decimal // > 0
	Reason    string          // opcional: compra, venta, producción, inventario...
	CreatedAt time.Time       // asignado por la base de datos al insertar
}

// ValidMovementType indica si s es un movement_type conocido.
func ValidMovementType(s string) bool {
	return s == MovementTypeIn || s == MovementTypeOut || s == MovementTypeAdjust
}
