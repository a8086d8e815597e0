package list_rooms

import (
	"time"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

type DashboardService interface {
	Rooms() []domain.Room
	LastRefreshed() (time.Time, bool)
}
