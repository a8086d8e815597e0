package health

import "time"

type DashboardService interface {
	LastRefreshed() (time.Time, bool)
}
