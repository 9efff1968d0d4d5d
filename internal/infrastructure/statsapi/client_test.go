package statsapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"airstats/internal/domain"
	"airstats/internal/domain/entity"
	"airstats/internal/domain/value"
	"airstats/internal/infrastructure/statsapi"
	"airstats/pkg/errcodes"
)

func newClient(t *testing.T, handler http.HandlerFunc) (*statsapi.Client, *prometheus.Registry) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	reg := prometheus.NewRegistry()

	client, err := statsapi.New(statsapi.Config{BaseURL: srv.URL + "/", Timeout: time.Second}, nil, reg)
	require.NoError(t, err)

	return client, reg
}

func TestClientAllAirlines(t *testing.T) {
	rq := require.New(t)

	client, reg := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/api/all-airlines", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"airline_name":"S7","total_flights":10,"on_time_flights":8,"on_time_ratio":0.8,"rating":5.0},
			{"airline_name":"Победа","total_flights":4,"on_time_flights":1,"on_time_ratio":0.25,"rating":null}
		]`))
	})

	airlines, err := client.AllAirlines(context.Background())
	rq.NoError(err)
	rq.Len(airlines, 2)
	rq.Equal("S7", airlines[0].Name)
	rq.Equal(10, airlines[0].TotalFlights)
	rq.Equal(8, airlines[0].OnTimeFlights)
	rq.InDelta(0.8, airlines[0].OnTimeRatio, 1e-9)
	rq.NotNil(airlines[0].Rating)
	rq.InDelta(5.0, *airlines[0].Rating, 1e-9)
	rq.Nil(airlines[1].Rating)

	rq.InDelta(1, requestsTotal(t, reg, "/api/all-airlines", "ok"), 1e-9)
}

func TestClientSearchFlightsEncodesQuery(t *testing.T) {
	rq := require.New(t)

	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/api/airlines", r.URL.Path)
		rq.Equal("Санкт-Петербург", r.URL.Query().Get("from"))
		rq.Equal("Нью Йорк & Co", r.URL.Query().Get("to"))
		rq.Equal("2024-05-01", r.URL.Query().Get("date"))
		_, _ = w.Write([]byte(`[{"airline_name":"S7","departure_airport":"LED","arrival_airport":"JFK",
			"total_flights":10,"on_time_flights":8,"flight_count":10,"summary":20.5},
			{"airline_name":"X","departure_airport":"LED","arrival_airport":"JFK",
			"total_flights":0,"on_time_flights":0,"flight_count":0,"summary":null}]`))
	})

	results, err := client.SearchFlights(context.Background(), value.SearchQuery{
		From: "Санкт-Петербург",
		To:   "Нью Йорк & Co",
		Date: "2024-05-01",
	})
	rq.NoError(err)
	rq.Equal([]entity.FlightResult{
		{
			AirlineName:      "S7",
			DepartureAirport: "LED",
			ArrivalAirport:   "JFK",
			OnTimeFlights:    8,
			TotalFlights:     10,
			Summary:          20.5,
			FlightCount:      10,
		},
		{AirlineName: "X", DepartureAirport: "LED", ArrivalAirport: "JFK"},
	}, results)
}

func TestClientFlightFrequencyAndCities(t *testing.T) {
	rq := require.New(t)

	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/flight-frequency":
			rq.Equal("S7 Airlines", r.URL.Query().Get("airline"))
			_, _ = w.Write([]byte(`[{"month":"2024-01","flight_count":3},{"month":"2024-02","flight_count":7}]`))
		case "/api/cities":
			_, _ = w.Write([]byte(`["Москва","Сочи"]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	points, err := client.FlightFrequency(context.Background(), "S7 Airlines")
	rq.NoError(err)
	rq.Equal([]entity.FrequencyPoint{{Month: "2024-01", FlightCount: 3}, {Month: "2024-02", FlightCount: 7}}, points)

	cities, err := client.Cities(context.Background())
	rq.NoError(err)
	rq.Equal([]string{"Москва", "Сочи"}, cities)

	rq.NoError(client.Ping(context.Background()))
}

func TestClientErrors(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		code    string
		outcome string
	}{
		{
			name: "non 2xx status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			code:    string(errcodes.StatsAPIUnavailable),
			outcome: "unavailable",
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"not":"a list"`))
			},
			code:    string(errcodes.StatsAPIBadPayload),
			outcome: "bad_payload",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			client, reg := newClient(t, tc.handler)

			_, err := client.Cities(context.Background())
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, string(code))
			rq.InDelta(1, requestsTotal(t, reg, "/api/cities", tc.outcome), 1e-9)
		})
	}
}

func TestClientUnreachable(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client, err := statsapi.New(statsapi.Config{BaseURL: srv.URL}, nil, nil)
	rq.NoError(err)

	_, err = client.AllAirlines(context.Background())
	rq.True(domain.HasCode(err, errcodes.StatsAPIUnavailable))
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, err := statsapi.New(statsapi.Config{BaseURL: "/api"}, nil, nil)
	require.Error(t, err)
}

func requestsTotal(t *testing.T, reg *prometheus.Registry, endpoint, outcome string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "airstats_statsapi_requests_total" {
			continue
		}

		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}

			if labels["endpoint"] == endpoint && labels["outcome"] == outcome {
				return metric.GetCounter().GetValue()
			}
		}
	}

	return 0
}
