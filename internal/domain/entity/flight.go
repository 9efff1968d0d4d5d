package entity

// FlightResult — строка результата поиска /api/airlines.
type FlightResult struct {
	AirlineName      string
	DepartureAirport string
	ArrivalAirport   string
	OnTimeFlights    int
	TotalFlights     int
	// Summary — средняя задержка рейса в минутах.
	Summary     float64
	FlightCount int
}

type Medal string

const (
	MedalNone   Medal = ""
	MedalGold   Medal = "gold"
	MedalSilver Medal = "silver"
	MedalBronze Medal = "bronze"
)

// RankedFlight — результат поиска после сортировки по коэффициенту.
type RankedFlight struct {
	FlightResult
	Coefficient float64
	Medal       Medal
	// Annotated — только у первого места.
	Annotated bool
	DelayIcon bool
}
