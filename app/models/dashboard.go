package models

// MonthSummary aggregates paid fees for one billing period. PendingCount is
// only filled in for the current month; the previous-month summary omits it.
type MonthSummary struct {
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	TotalFees    float64 `json:"totalFees"`
	PaidCount    int     `json:"paidCount"`
	PendingCount *int    `json:"pendingCount,omitempty"`
}

// DashboardStats is the payload for the dashboard stats endpoint.
type DashboardStats struct {
	TotalStudents int          `json:"totalStudents"`
	CurrentMonth  MonthSummary `json:"currentMonth"`
	PreviousMonth MonthSummary `json:"previousMonth"`
}

// MonthlyBreakdownEntry is one period in the trailing monthly-fees chart.
type MonthlyBreakdownEntry struct {
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	MonthName   string  `json:"monthName"`
	TotalAmount float64 `json:"totalAmount"`
	PaidCount   int     `json:"paidCount"`
}
