package shaxmatka_page

import (
	"time"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/service/shaxmatka"
)

// legendItem строка легенды под шахматкой
type legendItem struct {
	Tier  domain.Tier
	Label string
	Count int
}

var tierLabels = map[domain.Tier]string{
	domain.TierVacant: "Bo‘sh (0–24%)",
	domain.TierKok:    "Ko‘k (25–49%)",
	domain.TierSariq:  "Sariq (50–74%)",
	domain.TierSabzi:  "Sabzi (75–99%)",
	domain.TierQizil:  "Qizil (100%)",
}

// pageData данные шаблона страницы
type pageData struct {
	Grid        *shaxmatka.Grid
	Legend      []legendItem
	RefreshedAt string
}

func newPageData(grid *shaxmatka.Grid, refreshedAt time.Time, refreshed bool) pageData {
	counts := grid.TierCounts()
	legend := make([]legendItem, 0, len(domain.Tiers))
	for _, tier := range domain.Tiers {
		legend = append(legend, legendItem{Tier: tier, Label: tierLabels[tier], Count: counts[tier]})
	}

	data := pageData{Grid: grid, Legend: legend}
	if refreshed {
		data.RefreshedAt = refreshedAt.Format("02.01.2006 15:04")
	}
	return data
}
