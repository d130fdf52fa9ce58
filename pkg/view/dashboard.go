package view

type DashboardPage struct {
	TotalRevenue   string
	RevenueToday   string
	TotalOrders    int
	OrdersToday    int
	TotalCustomers int
	TotalProducts  int
}

type RevenueRow struct {
	Period  string
	Revenue string
	Orders  int
}

type RevenuePage struct {
	Rows     []RevenueRow
	FromDate string
	ToDate   string
	GroupBy  string
	Status   string
	Statuses []string
}

type CustomersPage struct {
	TotalCustomers    int
	NewThisMonth      int
	ReturningPercent  string
	AverageOrderValue string
}
