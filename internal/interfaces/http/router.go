package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/production-stock-api/internal/application/auth"
	"github.com/jhoicas/production-stock-api/internal/application/inventory"
	"github.com/jhoicas/production-stock-api/internal/application/production"
	"github.com/jhoicas/production-stock-api/internal/application/usecase"
	"github.com/jhoicas/production-stock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RawMaterialUC    *usecase.RawMaterialUseCase
	BOMUC            *usecase.BOMUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ListMovements    *inventory.ListMovementsUseCase
	SuggestionUC     *production.SuggestionUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Raw materials (protegido)
	materials := protected.Group("/raw-materials")
	materialHandler := NewRawMaterialHandler(deps.RawMaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Delete("/:id", RequireRole(entity.RoleAdmin), materialHandler.Delete)

	// BOM: relaciones producto - materia prima (protegido)
	bom := protected.Group("/product-raw-materials")
	bomHandler := NewBOMHandler(deps.BOMUC)
	bom.Post("/", bomHandler.Create)
	bom.Get("/", bomHandler.List)
	bom.Delete("/:id", RequireRole(entity.RoleAdmin), bomHandler.Delete)

	// Stock movements (protegido)
	movements := protected.Group("/stock-movements")
	movementHandler := NewStockMovementHandler(deps.RegisterMovement, deps.ListMovements)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)

	// Production suggestion (protegido)
	prod := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.SuggestionUC)
	prod.Get("/suggestion", productionHandler.Suggest)
	prod.Get("/suggestion/pdf", productionHandler.SuggestPDF)
}
