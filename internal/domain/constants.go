package domain

// Стандартные категории номеров.
// Каталог принимает произвольные метки, эти - для стартового инвентаря.
const (
	CategoryStandard = "Standard"
	CategoryDeluxe   = "Deluxe"
	CategorySuite    = "Suite"
)

// Формат дат во внешних интерфейсах (ISO-8601)
const DateFormat = "2006-01-02" // YYYY-MM-DD

// DefaultRooms стартовый инвентарь отеля.
// Используется, когда в конфигурации не задано ни одного номера.
var DefaultRooms = []Room{
	{Number: 101, Category: CategoryStandard, NightlyRate: 1000},
	{Number: 102, Category: CategoryDeluxe, NightlyRate: 1500},
	{Number: 103, Category: CategorySuite, NightlyRate: 2000},
}
