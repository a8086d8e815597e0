package domain

// Значения по умолчанию для шахматки
const (
	DefaultGridDays = 31 // Сколько дней показывает шахматка начиная с сегодняшнего
	MaxGridDays     = 366
)

// Форматы дат
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// UnknownRoomNumber подставляется, если бэкенд не прислал ни number, ни name, ни _id
const UnknownRoomNumber = "unknown-room"

// Ключи, под которыми бэкенд может прислать название организации гостя.
// Порядок важен: побеждает первое непустое значение.
var CompanyFieldAliases = []string{
	"companyName",
	"company",
	"organization",
	"org",
}
