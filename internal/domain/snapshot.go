package domain

import "time"

// DashboardSnapshot é o retrato diário das métricas de um usuário,
// gerado pelo agendador e guardado em dashboard_snapshots.
type DashboardSnapshot struct {
	ID            int                      `json:"id"`
	UserID        int                      `json:"userId"`
	Date          time.Time                `json:"date"`
	TotalSpent    float64                  `json:"totalSpent"`
	TodaySpent    float64                  `json:"todaySpent"`
	TotalAds      int                      `json:"totalAds"`
	PlatformStats map[string]*PlatformStat `json:"platformStats"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}
