package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse KPIs del dashboard, recalculados en cada petición
// desde la colección vigente (sin caché ni mantenimiento incremental).
type DashboardStatsResponse struct {
	TotalProducts  int             `json:"total_products"`
	ActiveProducts int             `json:"active_products"`  // status == active
	TotalValue     decimal.Decimal `json:"total_value"`      // Σ price × stock
	LowStockItems  int             `json:"low_stock_items"`  // stock < 10
}
