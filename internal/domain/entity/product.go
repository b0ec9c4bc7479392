package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Los slots persistidos guardan price como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Estados de producto.
const (
	ProductStatusActive   = "active"
	ProductStatusDraft    = "draft"
	ProductStatusArchived = "archived"
)

// Categories catálogo fijo de categorías de producto.
var Categories = []string{
	"Elektronik",
	"Pakaian",
	"Rumah & Taman",
	"Kecantikan",
	"Olahraga",
	"Buku",
	"Mainan",
}

// LowStockThreshold por debajo de este stock el producto cuenta como "stock bajo".
const LowStockThreshold = 10

// Product representa un producto del catálogo.
// ID y CreatedAt se asignan una sola vez al crear y son inmutables.
// Los tags JSON definen el formato del slot persistido admin_products.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Status      string          `json:"status"` // active, draft, archived
	Description string          `json:"description"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// InventoryValue devuelve price × stock del producto.
func (p Product) InventoryValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// IsLowStock indica si el producto está por debajo del umbral de stock.
func (p Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}
