package get_home_summary

import "github.com/m04kA/SMC-HotelDashboard/internal/domain"

// AvailabilityResponse свободные места за период
type AvailabilityResponse struct {
	Period        domain.DateRange
	Days          int                      // Длина периода в днях, обе границы включительно
	Stats         domain.AvailabilityStats // Ответ бэкенда
	TotalCapacity int                      // Вместимость всех загруженных номеров
}

// MonthlyComparisonResponse загрузка за месяц в сравнении с предыдущим
type MonthlyComparisonResponse struct {
	Current            domain.MonthlyStats
	Previous           domain.MonthlyStats
	OccupancyRateDelta float64 // Current - Previous, в процентных пунктах
	UsedCountDelta     int
}
