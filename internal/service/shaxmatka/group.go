package shaxmatka

import (
	"sort"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// CompanyRooms номера, в которых проживают гости одной организации
type CompanyRooms struct {
	Company string   `json:"company"`
	Rooms   []string `json:"rooms"`
}

// GroupByCompanyMap группирует номера по организациям гостей.
// Номер попадает в каждую организацию, чьи гости в нем живут, но не более одного раза на организацию.
// Гости без корректных дат тоже учитываются.
// Номера внутри организации упорядочены по числу из цифр номера.
func GroupByCompanyMap(rooms []domain.Room) map[string][]string {
	seen := make(map[string]map[string]struct{})
	grouped := make(map[string][]string)

	add := func(company, number string) {
		if company == "" {
			return
		}
		if seen[company] == nil {
			seen[company] = make(map[string]struct{})
		}
		if _, ok := seen[company][number]; ok {
			return
		}
		seen[company][number] = struct{}{}
		grouped[company] = append(grouped[company], number)
	}

	for _, room := range rooms {
		for _, guest := range room.Guests {
			add(guest.CompanyName, room.Number)
		}
		for _, company := range room.UndatedCompanies {
			add(company, room.Number)
		}
	}

	for company, numbers := range grouped {
		grouped[company] = SortNumbers(numbers)
	}

	return grouped
}

// GroupByCompany то же, что GroupByCompanyMap, но в виде списка, упорядоченного по названию организации
func GroupByCompany(rooms []domain.Room) []CompanyRooms {
	grouped := GroupByCompanyMap(rooms)

	result := make([]CompanyRooms, 0, len(grouped))
	for company, numbers := range grouped {
		result = append(result, CompanyRooms{
			Company: company,
			Rooms:   numbers,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Company < result[j].Company
	})

	return result
}
