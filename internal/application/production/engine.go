package production

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/production-stock-api/internal/application/dto"
	"github.com/jhoicas/production-stock-api/internal/domain/entity"
)

// Suggest calcula la sugerencia de producción con una sola pasada greedy:
// prioriza los productos de mayor valor unitario y les reserva materia prima
// hasta agotarla. La reserva es irreversible dentro de la pasada (sin
// backtracking): un producto procesado nunca se revisita aunque uno posterior
// quede en cero.
//
// El stock de materias primas se trunca a unidades enteras antes de dividir.
// Desempate del orden: valor descendente, luego código de producto ascendente.
// El cálculo es puro: no muta las entidades ni persiste nada.
func Suggest(products []*entity.Product, materials []*entity.RawMaterial, links []*entity.BOMLink) *dto.ProductionSuggestionResponse {
	// Stock de trabajo: materia prima -> unidades enteras disponibles.
	// Se consume durante la pasada y se descarta al terminar.
	stock := make(map[string]int64, len(materials))
	for _, m := range materials {
		stock[m.ID] = m.StockQuantity.IntPart()
	}

	// Índice BOM: producto -> relaciones, conservando todas.
	linksByProduct := make(map[string][]*entity.BOMLink, len(products))
	for _, l := range links {
		linksByProduct[l.ProductID] = append(linksByProduct[l.ProductID], l)
	}

	ordered := make([]*entity.Product, len(products))
	copy(ordered, products)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Value.Equal(ordered[j].Value) {
			return ordered[i].Value.GreaterThan(ordered[j].Value)
		}
		return ordered[i].Code < ordered[j].Code
	})

	suggested := make([]dto.ProductionSuggestionItem, 0, len(ordered))
	total := decimal.Zero

	for _, p := range ordered {
		bom := linksByProduct[p.ID]
		maxUnits := producibleUnits(bom, stock)
		if maxUnits <= 0 {
			continue
		}

		// Reservar la materia prima consumida por maxUnits unidades.
		for _, l := range bom {
			stock[l.RawMaterialID] -= l.QuantityRequired * maxUnits
		}

		productTotal := p.Value.Mul(decimal.NewFromInt(maxUnits)).Round(2)
		total = total.Add(productTotal)

		suggested = append(suggested, dto.ProductionSuggestionItem{
			ProductID:        p.ID,
			ProductCode:      p.Code,
			ProductName:      p.Name,
			UnitValue:        p.Value,
			QuantityPossible: maxUnits,
			TotalValue:       productTotal,
		})
	}

	return &dto.ProductionSuggestionResponse{
		Products:             suggested,
		TotalProductionValue: total.Round(2),
	}
}

// producibleUnits devuelve el máximo de unidades fabricables con el stock de
// trabajo actual: el mínimo de floor(disponible/requerido) entre las
// relaciones del BOM. Devuelve 0 si el producto no tiene BOM, si alguna
// relación apunta a una materia prima inexistente o si algún requerido <= 0.
func producibleUnits(bom []*entity.BOMLink, stock map[string]int64) int64 {
	if len(bom) == 0 {
		return 0
	}
	var maxUnits int64 = -1
	for _, l := range bom {
		available, ok := stock[l.RawMaterialID]
		if !ok {
			// Relación colgante: el producto es improducible, no un error.
			return 0
		}
		if l.QuantityRequired <= 0 {
			return 0
		}
		possible := available / l.QuantityRequired
		if maxUnits < 0 || possible < maxUnits {
			maxUnits = possible
		}
	}
	return maxUnits
}
