package entity

import "github.com/shopspring/decimal"

// Tipos de ítem sobre los que se registran movimientos de stock.
const (
	ItemTypeProduct     = "product"
	ItemTypeRawMaterial = "raw_material"
)

// StockItem es cualquier ítem con saldo de inventario. Product y RawMaterial
// lo implementan; el procesador de movimientos opera sobre esta interfaz y
// despacha por item_type, sin inspección dinámica de campos.
type StockItem interface {
	Balance() decimal.Decimal
	SetBalance(q decimal.Decimal)
}

// ValidItemType indica si s es un item_type conocido.
func ValidItemType(s string) bool {
	return s == ItemTypeProduct || s == ItemTypeRawMaterial
}
