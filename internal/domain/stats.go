package domain

import (
	"bytes"
	"encoding/json"
)

// RoomVacancy свободные места в номере за период
type RoomVacancy struct {
	Number   string `json:"number"`
	Free     int    `json:"free"`
	Capacity int    `json:"capacity,omitempty"`
}

func (v *RoomVacancy) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	number := firstNonEmpty(fields, "number", "name", "_id")
	if number == "" {
		number = UnknownRoomNumber
	}
	free, _ := flexInt(fields["free"])
	capacity, _ := flexInt(fields["capacity"])

	*v = RoomVacancy{
		Number:   number,
		Free:     free,
		Capacity: capacity,
	}
	return nil
}

// AvailabilityStats сводка свободных мест за период
type AvailabilityStats struct {
	AvailableRooms    int           `json:"availableRooms"`
	AvailableCapacity int           `json:"availableCapacity"`
	OccupancyRate     float64       `json:"occupancyRate"`
	Details           []RoomVacancy `json:"details"`
}

func (s *AvailabilityStats) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	rooms, _ := flexInt(fields["availableRooms"])
	capacity, _ := flexInt(fields["availableCapacity"])
	rate, _ := flexFloat(fields["occupancyRate"])

	details := make([]RoomVacancy, 0)
	for _, key := range []string{"details", "availableRoomsList"} {
		raw := bytes.TrimSpace(fields[key])
		if len(raw) == 0 || raw[0] != '[' {
			continue
		}
		if err := json.Unmarshal(raw, &details); err != nil {
			return err
		}
		break
	}

	*s = AvailabilityStats{
		AvailableRooms:    rooms,
		AvailableCapacity: capacity,
		OccupancyRate:     rate,
		Details:           details,
	}
	return nil
}

// MonthlyStats статистика загрузки за месяц
type MonthlyStats struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	MonthLabel    string  `json:"monthLabel"`
	TotalRooms    int     `json:"totalRooms"`
	UsedCount     int     `json:"usedCount"`
	OccupancyRate float64 `json:"occupancyRate"`
}

// UnmarshalJSON читает ответ бэкенда, где month это подпись месяца, а не номер
func (s *MonthlyStats) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	year, _ := flexInt(fields["year"])
	total, _ := flexInt(fields["totalRooms"])
	used, _ := flexInt(fields["usedCount"])
	rate, _ := flexFloat(fields["occupancyRate"])

	label := firstNonEmpty(fields, "monthLabel", "month")
	month, isNumber := flexInt(fields["monthNumber"])
	if !isNumber {
		month, _ = flexInt(fields["month"])
	}
	if month < 1 || month > 12 {
		month = 0
	}

	*s = MonthlyStats{
		Year:          year,
		Month:         month,
		MonthLabel:    label,
		TotalRooms:    total,
		UsedCount:     used,
		OccupancyRate: rate,
	}
	return nil
}
