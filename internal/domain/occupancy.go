package domain

// Tier цветовая категория загрузки номера за день
type Tier string

const (
	TierVacant Tier = "vacant" // меньше 25%
	TierKok    Tier = "kok"    // 25–49%
	TierSariq  Tier = "sariq"  // 50–74%
	TierSabzi  Tier = "sabzi"  // 75–99%
	TierQizil  Tier = "qizil"  // 100% и переполнение
)

// Tiers все категории в порядке возрастания загрузки
var Tiers = []Tier{
	TierVacant,
	TierKok,
	TierSariq,
	TierSabzi,
	TierQizil,
}

// IsValid проверяет, что категория входит в список известных
func (t Tier) IsValid() bool {
	for _, known := range Tiers {
		if t == known {
			return true
		}
	}
	return false
}
