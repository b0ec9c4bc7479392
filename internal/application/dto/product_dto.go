package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada del formulario de alta de producto.
// Replica las validaciones nativas del formulario: campos requeridos y tipos numéricos.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Category    string          `json:"category" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"min=0"`
	Status      string          `json:"status" validate:"required,oneof=active draft archived"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
}

// UpdateProductRequest entrada del formulario de edición. Campos en nil no se
// tocan (merge); id y createdAt nunca se modifican.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Status      *string          `json:"status" validate:"omitempty,oneof=active draft archived"`
	Description *string          `json:"description"`
	Image       *string          `json:"image"`
}

// ProductFilter criterios de listado: búsqueda por texto (name/category,
// insensible a mayúsculas) y filtro exacto por status ("" o "all" = todos).
type ProductFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ProductListResponse listado filtrado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
