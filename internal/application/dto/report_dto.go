package dto

import "time"

// InventoryReport datos de entrada para los exportadores PDF/XLSX.
type InventoryReport struct {
	Title       string
	GeneratedAt time.Time
	Stats       DashboardStatsDTO
	Cards       []StatCard
	Rows        []ProductRow
}
