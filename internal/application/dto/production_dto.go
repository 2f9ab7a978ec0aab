package dto

import "github.com/shopspring/decimal"

// ProductionSuggestionItem una sugerencia de producción para un producto:
// cuántas unidades pueden fabricarse con el stock de materias primas restante.
type ProductionSuggestionItem struct {
	ProductID        string          `json:"product_id"`
	ProductCode      string          `json:"product_code"`
	ProductName      string          `json:"product_name"`
	UnitValue        decimal.Decimal `json:"unit_value"`
	QuantityPossible int64           `json:"quantity_possible"`
	TotalValue       decimal.Decimal `json:"total_value"` // unit_value * quantity_possible, 2 decimales
}

// ProductionSuggestionResponse resultado del cálculo greedy: productos en el
// orden en que fueron procesados (valor unitario descendente) y valor total.
type ProductionSuggestionResponse struct {
	Products             []ProductionSuggestionItem `json:"products"`
	TotalProductionValue decimal.Decimal            `json:"total_production_value"`
}
