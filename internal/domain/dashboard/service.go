package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns the aggregates, served from cache when fresh
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}
