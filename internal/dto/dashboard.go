package dto

// DashboardResponse represents the operational snapshot for one company
type DashboardResponse struct {
	CompanyID       string  `json:"company_id"`
	OpenOrders      int     `json:"open_orders"`
	TablesAvailable int     `json:"tables_available"`
	TablesOccupied  int     `json:"tables_occupied"`
	LowStockCount   int     `json:"low_stock_count"`
	IncomeToday     float64 `json:"income_today"`
	ExpenseToday    float64 `json:"expense_today"`
	GeneratedAt     string  `json:"generated_at"`
}
