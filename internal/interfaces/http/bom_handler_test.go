package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/production-stock-api/internal/application/usecase"
	"github.com/jhoicas/production-stock-api/internal/domain"
	"github.com/jhoicas/production-stock-api/internal/domain/entity"
	apphttp "github.com/jhoicas/production-stock-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs: un producto y una materia fijos; el repo BOM rechaza el par repetido
// como lo haría el constraint único de la base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct{}

func (stubProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (stubProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if id == "p1" {
		return &entity.Product{ID: "p1", Code: "P1", Name: "Producto P1"}, nil
	}
	return nil, nil
}
func (stubProductRepo) GetByCode(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (s stubProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return s.GetByID(ctx, id)
}
func (stubProductRepo) List(context.Context) ([]*entity.Product, error) { return nil, nil }
func (stubProductRepo) UpdateStock(context.Context, string, decimal.Decimal) error {
	return nil
}
func (stubProductRepo) Delete(context.Context, string) error { return nil }

type stubMaterialRepo struct{}

func (stubMaterialRepo) Create(context.Context, *entity.RawMaterial) error { return nil }
func (stubMaterialRepo) GetByID(_ context.Context, id string) (*entity.RawMaterial, error) {
	if id == "r1" {
		return &entity.RawMaterial{ID: "r1", Code: "R1", Name: "Materia R1"}, nil
	}
	return nil, nil
}
func (stubMaterialRepo) GetByCode(context.Context, string) (*entity.RawMaterial, error) {
	return nil, nil
}
func (s stubMaterialRepo) GetForUpdate(ctx context.Context, id string) (*entity.RawMaterial, error) {
	return s.GetByID(ctx, id)
}
func (stubMaterialRepo) List(context.Context) ([]*entity.RawMaterial, error) { return nil, nil }
func (stubMaterialRepo) UpdateStock(context.Context, string, decimal.Decimal) error {
	return nil
}
func (stubMaterialRepo) Delete(context.Context, string) error { return nil }

type stubBOMRepo struct {
	pairs map[string]bool
}

func (r *stubBOMRepo) Create(_ context.Context, link *entity.BOMLink) error {
	key := link.ProductID + "|" + link.RawMaterialID
	if r.pairs[key] {
		return domain.ErrDuplicate
	}
	r.pairs[key] = true
	return nil
}
func (r *stubBOMRepo) GetByID(context.Context, string) (*entity.BOMLink, error) { return nil, nil }
func (r *stubBOMRepo) List(context.Context) ([]*entity.BOMLink, error)          { return nil, nil }
func (r *stubBOMRepo) ListByProduct(context.Context, string) ([]*entity.BOMLink, error) {
	return nil, nil
}
func (r *stubBOMRepo) Delete(context.Context, string) error { return nil }

func buildBOMApp() *fiber.App {
	uc := usecase.NewBOMUseCase(&stubBOMRepo{pairs: make(map[string]bool)}, stubProductRepo{}, stubMaterialRepo{})
	handler := apphttp.NewBOMHandler(uc)

	app := fiber.New()
	app.Post("/api/product-raw-materials", handler.Create)
	return app
}

func postBOMLink(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/product-raw-materials", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del mapeo de errores del handler BOM
// ──────────────────────────────────────────────────────────────────────────────

// Par (product_id, raw_material_id) repetido → HTTP 409 DUPLICATE.
func TestBOMHandler_ParDuplicado_Retorna409(t *testing.T) {
	app := buildBOMApp()
	body := `{"product_id":"p1","raw_material_id":"r1","quantity_required":2}`

	resp := postBOMLink(t, app, body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode,
		"la primera relación debe crearse")

	resp = postBOMLink(t, app, body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode,
		"repetir el par debe retornar 409")

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "DUPLICATE",
		"la respuesta debe incluir el código DUPLICATE")
}

// Producto o materia inexistente → HTTP 404.
func TestBOMHandler_ItemInexistente_Retorna404(t *testing.T) {
	app := buildBOMApp()

	resp := postBOMLink(t, app, `{"product_id":"no-existe","raw_material_id":"r1","quantity_required":2}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// quantity_required <= 0 → HTTP 400 VALIDATION.
func TestBOMHandler_CantidadInvalida_Retorna400(t *testing.T) {
	app := buildBOMApp()

	resp := postBOMLink(t, app, `{"product_id":"p1","raw_material_id":"r1","quantity_required":0}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
