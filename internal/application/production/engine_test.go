package production_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/production-stock-api/internal/application/production"
	"github.com/jhoicas/production-stock-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func product(id, code string, value float64) *entity.Product {
	return &entity.Product{
		ID:    id,
		Code:  code,
		Name:  "Producto " + code,
		Value: decimal.NewFromFloat(value),
	}
}

func material(id, code string, stock float64) *entity.RawMaterial {
	return &entity.RawMaterial{
		ID:            id,
		Code:          code,
		Name:          "Materia " + code,
		StockQuantity: decimal.NewFromFloat(stock),
	}
}

func link(productID, materialID string, required int64) *entity.BOMLink {
	return &entity.BOMLink{
		ID:               productID + "-" + materialID,
		ProductID:        productID,
		RawMaterialID:    materialID,
		QuantityRequired: required,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos base del cálculo greedy
// ──────────────────────────────────────────────────────────────────────────────

// Un producto, una materia prima: max_units = floor(stock / requerido).
func TestSuggest_UnProducto_FloorDeStock(t *testing.T) {
	products := []*entity.Product{product("p1", "P1", 10.00)}
	materials := []*entity.RawMaterial{material("r1", "R1", 7)}
	links := []*entity.BOMLink{link("p1", "r1", 2)}

	out := production.Suggest(products, materials, links)

	require.Len(t, out.Products, 1)
	assert.Equal(t, int64(3), out.Products[0].QuantityPossible,
		"con 7 unidades y 2 requeridas deben salir 3 unidades (floor)")
	assert.True(t, out.Products[0].TotalValue.Equal(decimal.NewFromFloat(30.00)),
		"total del producto debe ser 3 * 10.00 = 30.00, fue %s", out.Products[0].TotalValue)
	assert.True(t, out.TotalProductionValue.Equal(decimal.NewFromFloat(30.00)))
}

// El producto de mayor valor consume primero la materia prima compartida;
// el segundo queda en cero y se omite de la respuesta.
func TestSuggest_MayorValorConsumePrimero(t *testing.T) {
	products := []*entity.Product{
		product("p2", "P2", 10.00),
		product("p1", "P1", 20.00),
	}
	materials := []*entity.RawMaterial{material("r1", "R1", 5)}
	links := []*entity.BOMLink{
		link("p1", "r1", 1),
		link("p2", "r1", 1),
	}

	out := production.Suggest(products, materials, links)

	require.Len(t, out.Products, 1, "P2 queda sin materia prima y debe omitirse")
	assert.Equal(t, "P1", out.Products[0].ProductCode)
	assert.Equal(t, int64(5), out.Products[0].QuantityPossible)
	assert.True(t, out.TotalProductionValue.Equal(decimal.NewFromFloat(100.00)),
		"total debe ser 5 * 20.00 = 100.00, fue %s", out.TotalProductionValue)
}

// Varias materias primas: manda la más escasa (mínimo entre relaciones).
func TestSuggest_LimitaLaMateriaMasEscasa(t *testing.T) {
	products := []*entity.Product{product("p1", "P1", 5.00)}
	materials := []*entity.RawMaterial{
		material("r1", "R1", 100),
		material("r2", "R2", 9),
	}
	links := []*entity.BOMLink{
		link("p1", "r1", 1),
		link("p1", "r2", 3),
	}

	out := production.Suggest(products, materials, links)

	require.Len(t, out.Products, 1)
	assert.Equal(t, int64(3), out.Products[0].QuantityPossible,
		"R2 permite solo floor(9/3) = 3 unidades")
}

// El stock de materia prima se trunca a entero antes de dividir.
func TestSuggest_TruncaStockFraccionario(t *testing.T) {
	products := []*entity.Product{product("p1", "P1", 10.00)}
	materials := []*entity.RawMaterial{material("r1", "R1", 7.9)}
	links := []*entity.BOMLink{link("p1", "r1", 2)}

	out := production.Suggest(products, materials, links)

	require.Len(t, out.Products, 1)
	assert.Equal(t, int64(3), out.Products[0].QuantityPossible,
		"7.9 se trunca a 7; floor(7/2) = 3")
}

// ──────────────────────────────────────────────────────────────────────────────
// Exclusiones
// ──────────────────────────────────────────────────────────────────────────────

// Producto sin BOM: improducible, se omite.
func TestSuggest_ProductoSinBOM_Omitido(t *testing.T) {
	products := []*entity.Product{product("p1", "P1", 10.00)}
	materials := []*entity.RawMaterial{material("r1", "R1", 100)}

	out := production.Suggest(products, materials, nil)

	assert.Empty(t, out.Products)
	assert.True(t, out.TotalProductionValue.IsZero())
}

// Relación con quantity_required = 0: el producto se excluye por completo,
// sin importar el stock disponible.
func TestSuggest_RequeridoCero_ProductoExcluido(t *testing.T) {
	products := []*entity.Product{product("p1", "P1", 10.00)}
	materials := []*entity.RawMaterial{
		material("r1", "R1", 100),
		material("r2", "R2", 100),
	}
	links := []*entity.BOMLink{
		link("p1", "r1", 1),
		link("p1", "r2", 0),
	}

	out := production.Suggest(products, materials, links)

	assert.Empty(t, out.Products,
		"una relación con requerido 0 excluye el producto completo")
}

// Relación colgante (materia prima inexistente): producto improducible.
func TestSuggest_RelacionColgante_ProductoOmitido(t *testing.T) {
	products := []*entity.Product{product("p1", "P1", 10.00)}
	materials := []*entity.RawMaterial{material("r1", "R1", 100)}
	links := []*entity.BOMLink{
		link("p1", "r1", 1),
		link("p1", "r-borrada", 1),
	}

	out := production.Suggest(products, materials, links)

	assert.Empty(t, out.Products)
}

// Producto con stock exacto para 0 unidades: se omite, no aparece con 0.
func TestSuggest_CeroUnidades_Omitido(t *testing.T) {
	products := []*entity.Product{product("p1", "P1", 10.00)}
	materials := []*entity.RawMaterial{material("r1", "R1", 1)}
	links := []*entity.BOMLink{link("p1", "r1", 2)}

	out := production.Suggest(products, materials, links)

	assert.Empty(t, out.Products)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden y desempate
// ──────────────────────────────────────────────────────────────────────────────

// Mismo valor unitario: desempata el código de producto ascendente.
func TestSuggest_EmpateEnValor_DesempataCodigo(t *testing.T) {
	products := []*entity.Product{
		product("pb", "B-02", 10.00),
		product("pa", "A-01", 10.00),
	}
	materials := []*entity.RawMaterial{material("r1", "R1", 3)}
	links := []*entity.BOMLink{
		link("pa", "r1", 1),
		link("pb", "r1", 1),
	}

	out := production.Suggest(products, materials, links)

	require.Len(t, out.Products, 1, "A-01 consume todo R1 y B-02 queda fuera")
	assert.Equal(t, "A-01", out.Products[0].ProductCode,
		"a igual valor gana el código menor")
	assert.Equal(t, int64(3), out.Products[0].QuantityPossible)
}

// La respuesta conserva el orden de procesamiento (valor descendente).
func TestSuggest_RespuestaEnOrdenDeProcesamiento(t *testing.T) {
	products := []*entity.Product{
		product("p1", "P1", 5.00),
		product("p2", "P2", 50.00),
		product("p3", "P3", 20.00),
	}
	materials := []*entity.RawMaterial{
		material("r1", "R1", 10),
		material("r2", "R2", 10),
		material("r3", "R3", 10),
	}
	links := []*entity.BOMLink{
		link("p1", "r1", 1),
		link("p2", "r2", 1),
		link("p3", "r3", 1),
	}

	out := production.Suggest(products, materials, links)

	require.Len(t, out.Products, 3)
	assert.Equal(t, "P2", out.Products[0].ProductCode)
	assert.Equal(t, "P3", out.Products[1].ProductCode)
	assert.Equal(t, "P1", out.Products[2].ProductCode)
}

// Greedy sin backtracking: lo reservado por un producto anterior no se
// devuelve aunque deje en cero a los siguientes.
func TestSuggest_ReservaIrreversible(t *testing.T) {
	// P1 (30.00) necesita 2×R1; P2 (10.00) necesita 1×R1. Con R1 = 5,
	// P1 toma 2 unidades (consume 4) y a P2 le queda 1.
	products := []*entity.Product{
		product("p1", "P1", 30.00),
		product("p2", "P2", 10.00),
	}
	materials := []*entity.RawMaterial{material("r1", "R1", 5)}
	links := []*entity.BOMLink{
		link("p1", "r1", 2),
		link("p2", "r1", 1),
	}

	out := production.Suggest(products, materials, links)

	require.Len(t, out.Products, 2)
	assert.Equal(t, int64(2), out.Products[0].QuantityPossible)
	assert.Equal(t, int64(1), out.Products[1].QuantityPossible)
	assert.True(t, out.TotalProductionValue.Equal(decimal.NewFromFloat(70.00)),
		"total debe ser 2*30 + 1*10 = 70.00, fue %s", out.TotalProductionValue)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades
// ──────────────────────────────────────────────────────────────────────────────

// Idempotencia: el cálculo es puro; dos pasadas sobre el mismo estado
// producen exactamente lo mismo y no mutan las entidades de entrada.
func TestSuggest_Idempotente(t *testing.T) {
	products := []*entity.Product{
		product("p1", "P1", 20.00),
		product("p2", "P2", 10.00),
	}
	materials := []*entity.RawMaterial{material("r1", "R1", 5)}
	links := []*entity.BOMLink{
		link("p1", "r1", 1),
		link("p2", "r1", 1),
	}

	out1 := production.Suggest(products, materials, links)
	out2 := production.Suggest(products, materials, links)

	assert.Equal(t, out1, out2, "dos pasadas sin movimientos deben ser idénticas")
	assert.True(t, materials[0].StockQuantity.Equal(decimal.NewFromInt(5)),
		"el cálculo no debe mutar el stock de entrada")
}

// Monotonicidad: subir el stock de una materia prima nunca baja el total.
func TestSuggest_MonotonoEnStock(t *testing.T) {
	products := []*entity.Product{
		product("p1", "P1", 20.00),
		product("p2", "P2", 10.00),
	}
	links := []*entity.BOMLink{
		link("p1", "r1", 2),
		link("p2", "r1", 1),
	}

	previous := decimal.Zero
	for stock := int64(0); stock <= 20; stock++ {
		materials := []*entity.RawMaterial{material("r1", "R1", float64(stock))}
		out := production.Suggest(products, materials, links)
		assert.True(t, out.TotalProductionValue.GreaterThanOrEqual(previous),
			"con stock %d el total %s no debe bajar de %s", stock, out.TotalProductionValue, previous)
		previous = out.TotalProductionValue
	}
}

// Entradas vacías: respuesta vacía con total 0, nunca nil.
func TestSuggest_SinDatos(t *testing.T) {
	out := production.Suggest(nil, nil, nil)

	require.NotNil(t, out)
	assert.Empty(t, out.Products)
	assert.True(t, out.TotalProductionValue.IsZero())
}

// Los totales se redondean a 2 decimales.
func TestSuggest_RedondeaTotales(t *testing.T) {
	products := []*entity.Product{product("p1", "P1", 3.333)}
	materials := []*entity.RawMaterial{material("r1", "R1", 3)}
	links := []*entity.BOMLink{link("p1", "r1", 1)}

	out := production.Suggest(products, materials, links)

	require.Len(t, out.Products, 1)
	assert.True(t, out.Products[0].TotalValue.Equal(decimal.NewFromFloat(10.00)),
		"3 * 3.333 = 9.999 debe redondear a 10.00, fue %s", out.Products[0].TotalValue)
}
