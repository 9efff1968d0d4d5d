package entity

// AirlineSummary — сводка по авиакомпании из /api/all-airlines.
type AirlineSummary struct {
	Name          string
	TotalFlights  int
	OnTimeFlights int
	OnTimeRatio   float64
	// Rating задаётся API; nil, если API не смог его посчитать.
	Rating *float64
}

// RatedAirline — авиакомпания с рейтингом, приведённым к шкале 1–5.
type RatedAirline struct {
	AirlineSummary
	Stars float64
	Row   StarRow
}
