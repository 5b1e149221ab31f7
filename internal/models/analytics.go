package models

// TimeSeriesPoint is one day's bucket in an analytics series
type TimeSeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Count int64   `json:"count"`
}

// TopProduct is one entry in the best-sellers ranking
type TopProduct struct {
	ProductName string  `json:"productName"`
	OrderCount  int64   `json:"orderCount"`
	Revenue     float64 `json:"revenue"`
}

// Analytics is the full business analytics payload for a trailing window
type Analytics struct {
	TotalConversations     int64   `json:"totalConversations"`
	ActiveConversations    int64   `json:"activeConversations"`
	ConvertedConversations int64   `json:"convertedConversations"`
	AbandonedConversations int64   `json:"abandonedConversations"`
	HandoffConversations   int64   `json:"handoffConversations"`
	ConversionRate         float64 `json:"conversionRate"`

	TotalOrders       int64   `json:"totalOrders"`
	PendingOrders     int64   `json:"pendingOrders"`
	PaidOrders        int64   `json:"paidOrders"`
	ShippedOrders     int64   `json:"shippedOrders"`
	DeliveredOrders   int64   `json:"deliveredOrders"`
	CancelledOrders   int64   `json:"cancelledOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`

	TotalMessages    int64 `json:"totalMessages"`
	InboundMessages  int64 `json:"inboundMessages"`
	OutboundMessages int64 `json:"outboundMessages"`

	TotalProducts      int64 `json:"totalProducts"`
	ActiveProducts     int64 `json:"activeProducts"`
	OutOfStockProducts int64 `json:"outOfStockProducts"`

	RevenueByDay       []TimeSeriesPoint `json:"revenueByDay"`
	OrdersByDay        []TimeSeriesPoint `json:"ordersByDay"`
	ConversationsByDay []TimeSeriesPoint `json:"conversationsByDay"`

	TopProducts []TopProduct `json:"topProducts"`
}

// QuickSummary is the lightweight headline-metrics payload
type QuickSummary struct {
	ConversationsToday    int64   `json:"conversationsToday"`
	ConversationsThisWeek int64   `json:"conversationsThisWeek"`
	OrdersToday           int64   `json:"ordersToday"`
	OrdersThisWeek        int64   `json:"ordersThisWeek"`
	RevenueThisMonth      float64 `json:"revenueThisMonth"`
	PendingHandoffs       int64   `json:"pendingHandoffs"`
}

// DashboardOverview is the headline block on the dashboard
type DashboardOverview struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingAmount   float64 `json:"pendingAmount"`
	TotalInvoices   int64   `json:"totalInvoices"`
	TotalCustomers  int64   `json:"totalCustomers"`
	PaidInvoices    int64   `json:"paidInvoices"`
	PendingInvoices int64   `json:"pendingInvoices"`
	OverdueInvoices int64   `json:"overdueInvoices"`
	DraftInvoices   int64   `json:"draftInvoices"`
}

// DashboardComparison holds the month-over-month deltas
type DashboardComparison struct {
	RevenueChange float64 `json:"revenueChange"`
	InvoiceChange float64 `json:"invoiceChange"`
}

// ActivityItem is one row in the dashboard's recent-activity feed
type ActivityItem struct {
	Type          string  `json:"type"`
	InvoiceID     string  `json:"invoiceId"`
	InvoiceNumber string  `json:"invoiceNumber"`
	CustomerName  string  `json:"customerName"`
	Amount        float64 `json:"amount"`
	Timestamp     string  `json:"timestamp"`
}

// DashboardStats is the dashboard stats payload
type DashboardStats struct {
	Overview       DashboardOverview   `json:"overview"`
	Comparison     DashboardComparison `json:"comparison"`
	RecentActivity []ActivityItem      `json:"recentActivity"`
}
