package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidStay возвращается, когда у проживания гостя нет корректных дат
var ErrInvalidStay = errors.New("guest stay has invalid dates")

// GuestStay проживание гостя в номере, границы From и To включительно
type GuestStay struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	From        Date   `json:"from"`
	To          Date   `json:"to"`
}

// Covers сообщает, проживает ли гость в номере в указанный день
func (g GuestStay) Covers(d Date) bool {
	return !d.Before(g.From) && !d.After(g.To)
}

// UnmarshalJSON нормализует проживание один раз при получении данных:
// организация берется из первого непустого поля companyName/company/organization/org,
// перепутанные местами from и to меняются местами.
func (g *GuestStay) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	from, err := ParseDate(flexString(fields["from"]))
	if err != nil {
		return fmt.Errorf("%w: from: %v", ErrInvalidStay, err)
	}
	to, err := ParseDate(flexString(fields["to"]))
	if err != nil {
		return fmt.Errorf("%w: to: %v", ErrInvalidStay, err)
	}
	if to.Before(from) {
		from, to = to, from
	}

	*g = GuestStay{
		Name:        flexString(fields["name"]),
		PhoneNumber: flexString(fields["phoneNumber"]),
		CompanyName: firstNonEmpty(fields, CompanyFieldAliases...),
		From:        from,
		To:          to,
	}
	return nil
}

// Room номер гостиницы вместе с известными проживаниями
type Room struct {
	Number   string      `json:"number"`
	Capacity int         `json:"capacity"`
	Guests   []GuestStay `json:"guests"`

	// UndatedCompanies организации гостей, у которых нет корректных дат.
	// На шахматку такие гости не попадают, но учитываются при группировке по организациям.
	UndatedCompanies []string `json:"undatedCompanies,omitempty"`
}

// UnmarshalJSON нормализует номер при получении данных.
// Идентификатор берется из number, name или _id; guests, не являющийся массивом, считается пустым;
// проживания без корректных дат не попадают в Guests, их организации сохраняются в UndatedCompanies.
func (r *Room) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	number := firstNonEmpty(fields, "number", "name", "_id")
	if number == "" {
		number = UnknownRoomNumber
	}

	capacity, _ := flexInt(fields["capacity"])

	guests := make([]GuestStay, 0)
	var undated []string
	if raw := bytes.TrimSpace(fields["guests"]); len(raw) > 0 && raw[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		for _, item := range items {
			var g GuestStay
			if err := json.Unmarshal(item, &g); err != nil {
				if company := undatedCompany(item); company != "" {
					undated = append(undated, company)
				}
				continue
			}
			guests = append(guests, g)
		}
	}

	*r = Room{
		Number:           number,
		Capacity:         capacity,
		Guests:           guests,
		UndatedCompanies: undated,
	}
	return nil
}

// undatedCompany организация гостя, чье проживание не удалось разобрать
func undatedCompany(item json.RawMessage) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return ""
	}
	return firstNonEmpty(fields, CompanyFieldAliases...)
}

// Clone возвращает копию номера, не разделяющую список гостей с оригиналом
func (r Room) Clone() Room {
	guests := make([]GuestStay, len(r.Guests))
	copy(guests, r.Guests)
	r.Guests = guests
	if r.UndatedCompanies != nil {
		r.UndatedCompanies = append([]string(nil), r.UndatedCompanies...)
	}
	return r
}

// CloneRooms копирует список номеров
func CloneRooms(rooms []Room) []Room {
	result := make([]Room, len(rooms))
	for i, room := range rooms {
		result[i] = room.Clone()
	}
	return result
}

// TotalCapacity суммарная вместимость номеров
func TotalCapacity(rooms []Room) int {
	total := 0
	for _, room := range rooms {
		if room.Capacity > 0 {
			total += room.Capacity
		}
	}
	return total
}
