package entity

// BOMLink relaciona un producto con una materia prima requerida para producir
// una unidad (bill of materials). Única por par (ProductID, RawMaterialID);
// se elimina en cascada al borrar el producto o la materia prima.
type BOMLink struct {
	ID               string
	ProductID        string
	RawMaterialID    string
	QuantityRequired int64 // entero positivo; <= 0 hace el producto improducible
}
