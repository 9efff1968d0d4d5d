package entity

// FrequencyPoint — число рейсов авиакомпании за месяц (YYYY-MM).
type FrequencyPoint struct {
	Month       string
	FlightCount int
}

type RGBA struct {
	R, G, B uint8
	A       float64
}

type Dataset struct {
	Label           string
	Data            []float64
	BackgroundColor RGBA
	BorderColor     RGBA
	BorderWidth     float64
}

// Chart — линейный график частоты рейсов.
type Chart struct {
	Labels   []string
	Datasets []Dataset
}
