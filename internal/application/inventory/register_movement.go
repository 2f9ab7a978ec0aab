package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/production-stock-api/internal/application/dto"
	"github.com/jhoicas/production-stock-api/internal/domain"
	"github.com/jhoicas/production-stock-api/internal/domain/entity"
	"github.com/jhoicas/production-stock-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock (in, out, adjust) de
// forma transaccional: inserta el movimiento y actualiza el saldo del ítem en
// la misma transacción, con bloqueo de fila (SELECT FOR UPDATE) sobre el ítem.
//
// Es el único camino de escritura sobre stock_quantity: ningún otro caso de
// uso muta saldos, y todo cambio de saldo deja su movimiento correspondiente.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// RegisterMovement valida la entrada, resuelve el ítem según item_type, aplica
// la regla del tipo de movimiento y persiste movimiento + saldo atómicamente.
// Devuelve el movimiento persistido con ID y CreatedAt asignados.
//
// Reglas por tipo:
//
//	in:     nuevo = actual + cantidad
//	out:    requiere actual >= cantidad (si no, InsufficientStockError); nuevo = actual - cantidad
//	adjust: nuevo = cantidad (fija el saldo, no es un delta)
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.StockMovementResponse, error) {
	if !entity.ValidItemType(in.ItemType) || !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.ItemID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	movement := &entity.StockMovement{
		ID:       uuid.New().String(),
		ItemType: in.ItemType,
		ItemID:   in.ItemID,
		Type:     in.Type,
		Quantity: in.Quantity,
		Reason:   in.Reason,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		materialRepo repository.RawMaterialRepository,
	) error {
		// Resolver el ítem con bloqueo de fila; evita el lost update entre
		// movimientos concurrentes sobre el mismo ítem.
		var item entity.StockItem
		switch in.ItemType {
		case entity.ItemTypeProduct:
			p, err := productRepo.GetForUpdate(ctx, in.ItemID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrNotFound
			}
			item = p
		case entity.ItemTypeRawMaterial:
			m, err := materialRepo.GetForUpdate(ctx, in.ItemID)
			if err != nil {
				return err
			}
			if m == nil {
				return domain.ErrNotFound
			}
			item = m
		}

		newBalance, err := applyMovement(item.Balance(), in.Type, in.Quantity)
		if err != nil {
			return err
		}
		item.SetBalance(newBalance)

		switch in.ItemType {
		case entity.ItemTypeProduct:
			if err := productRepo.UpdateStock(ctx, in.ItemID, newBalance); err != nil {
				return err
			}
		case entity.ItemTypeRawMaterial:
			if err := materialRepo.UpdateStock(ctx, in.ItemID, newBalance); err != nil {
				return err
			}
		}
		return movRepo.Create(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	return &dto.StockMovementResponse{
		ID:        movement.ID,
		ItemType:  movement.ItemType,
		ItemID:    movement.ItemID,
		Type:      movement.Type,
		Quantity:  movement.Quantity,
		Reason:    movement.Reason,
		CreatedAt: movement.CreatedAt,
	}, nil
}

// applyMovement calcula el nuevo saldo según el tipo de movimiento.
func applyMovement(current decimal.Decimal, movementType string, quantity decimal.Decimal) (decimal.Decimal, error) {
	switch movementType {
	case entity.MovementTypeIn:
		return current.Add(quantity), nil
	case entity.MovementTypeOut:
		if current.LessThan(quantity) {
			return decimal.Zero, &domain.InsufficientStockError{Current: current, Requested: quantity}
		}
		return current.Sub(quantity), nil
	case entity.MovementTypeAdjust:
		// Ajuste absoluto: fija el saldo al valor, no suma ni resta.
		return quantity, nil
	}
	return decimal.Zero, domain.ErrInvalidInput
}

// ListMovementsUseCase lista el historial de movimientos (created_at desc).
// Solo lectura: no requiere transacción.
type ListMovementsUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewListMovementsUseCase construye el caso de uso.
func NewListMovementsUseCase(movRepo repository.StockMovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movRepo: movRepo}
}

// List devuelve los movimientos más recientes primero.
func (uc *ListMovementsUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.StockMovementListResponse, error) {
	page.DefaultPage()
	list, err := uc.movRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.StockMovementResponse{
			ID:        m.ID,
			ItemType:  m.ItemType,
			ItemID:    m.ItemID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reason:    m.Reason,
			CreatedAt: m.CreatedAt,
		})
	}
	return &dto.StockMovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
