package dashboard

import "github.com/shopspring/decimal"

// CacheKey holds the cached DashboardResponse; writes that move the numbers delete it.
const CacheKey = "dashboard:summary"

type DashboardResponse struct {
	TotalEmployees           int64           `json:"totalEmployees"`
	ActiveEmployees          int64           `json:"activeEmployees"`
	TotalSalaryThisMonth     decimal.Decimal `json:"totalSalaryThisMonth"`
	TotalSalaryLastMonth     decimal.Decimal `json:"totalSalaryLastMonth"`
	PendingSalaryGenerations int64           `json:"pendingSalaryGenerations"`
}
