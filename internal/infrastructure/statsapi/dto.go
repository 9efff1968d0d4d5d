package statsapi

import (
	"airstats/internal/domain/entity"
)

type airlineSummaryDTO struct {
	AirlineName   string   `json:"airline_name"`
	TotalFlights  int      `json:"total_flights"`
	OnTimeFlights int      `json:"on_time_flights"`
	OnTimeRatio   float64  `json:"on_time_ratio"`
	Rating        *float64 `json:"rating"`
}

func (d airlineSummaryDTO) toDomain() entity.AirlineSummary {
	return entity.AirlineSummary{
		Name:          d.AirlineName,
		TotalFlights:  d.TotalFlights,
		OnTimeFlights: d.OnTimeFlights,
		OnTimeRatio:   d.OnTimeRatio,
		Rating:        d.Rating,
	}
}

type flightResultDTO struct {
	AirlineName      string `json:"airline_name"`
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	TotalFlights     int    `json:"total_flights"`
	OnTimeFlights    int    `json:"on_time_flights"`
	FlightCount      int    `json:"flight_count"`
	// summary = NULL, если по рейсам нет фактического времени.
	Summary *float64 `json:"summary"`
}

func (d flightResultDTO) toDomain() entity.FlightResult {
	var summary float64
	if d.Summary != nil {
		summary = *d.Summary
	}

	return entity.FlightResult{
		AirlineName:      d.AirlineName,
		DepartureAirport: d.DepartureAirport,
		ArrivalAirport:   d.ArrivalAirport,
		OnTimeFlights:    d.OnTimeFlights,
		TotalFlights:     d.TotalFlights,
		Summary:          summary,
		FlightCount:      d.FlightCount,
	}
}

type frequencyPointDTO struct {
	Month       string `json:"month"`
	FlightCount int    `json:"flight_count"`
}

func (d frequencyPointDTO) toDomain() entity.FrequencyPoint {
	return entity.FrequencyPoint{
		Month:       d.Month,
		FlightCount: d.FlightCount,
	}
}
