package dto

// CreateBOMLinkRequest entrada para relacionar un producto con una materia prima.
type CreateBOMLinkRequest struct {
	ProductID        string `json:"product_id" validate:"required"`
	RawMaterialID    string `json:"raw_material_id" validate:"required"`
	QuantityRequired int64  `json:"quantity_required" validate:"required,gt=0"`
}

// BOMLinkResponse salida de una relación producto-materia prima.
type BOMLinkResponse struct {
	ID               string `json:"id"`
	ProductID        string `json:"product_id"`
	RawMaterialID    string `json:"raw_material_id"`
	QuantityRequired int64  `json:"quantity_required"`
}

// BOMLinkListResponse lista de relaciones.
type BOMLinkListResponse struct {
	Items []BOMLinkResponse `json:"items"`
	Total int               `json:"total"`
}
