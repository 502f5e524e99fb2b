package dto

// DashboardResponse carries the back-office landing page figures.
type DashboardResponse struct {
	Clients      int64                 `json:"clients"`
	Orders       int64                 `json:"orders"`
	EmailsSent   int64                 `json:"emails_sent"`
	RecentOrders []DashboardOrderEntry `json:"recent_orders"`
}

// DashboardOrderEntry is one recent order joined with its client name.
type DashboardOrderEntry struct {
	OrderResponse
	ClientName      string `json:"client_name"`
	ClientFirstName string `json:"client_first_name"`
}
