package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/admin-console-api/internal/application/dto"
	"github.com/jhoicas/admin-console-api/internal/application/store"
	"github.com/jhoicas/admin-console-api/internal/domain/entity"
)

// DashboardUseCase KPIs del dashboard: valores puramente derivados de la
// colección de productos, recalculados en cada llamada.
type DashboardUseCase struct {
	store *store.Store
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(st *store.Store) *DashboardUseCase {
	return &DashboardUseCase{store: st}
}

// Stats recorre la colección vigente y devuelve:
//   - total de productos
//   - productos con status active
//   - valor de inventario: Σ price × stock
//   - productos con stock bajo (stock < 10)
func (uc *DashboardUseCase) Stats() *dto.DashboardStatsResponse {
	products := uc.store.Products()

	out := &dto.DashboardStatsResponse{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
	}
	for _, p := range products {
		if p.Status == entity.ProductStatusActive {
			out.ActiveProducts++
		}
		if p.IsLowStock() {
			out.LowStockItems++
		}
		out.TotalValue = out.TotalValue.Add(p.InventoryValue())
	}
	return out
}
