package view_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"airstats/internal/domain/entity"
	"airstats/internal/domain/service/ranking"
	"airstats/internal/domain/value"
	"airstats/internal/view"
)

func rated(name string, stars float64, full, empty int, half bool) entity.RatedAirline {
	return entity.RatedAirline{
		AirlineSummary: entity.AirlineSummary{Name: name, TotalFlights: 42, OnTimeRatio: 0.5},
		Stars:          stars,
		Row:            entity.StarRow{Full: full, Half: half, Empty: empty},
	}
}

func TestUpdateLoaded(t *testing.T) {
	rq := require.New(t)

	state, patches, err := view.Update(view.State{}, view.Loaded{
		Airlines:       []entity.RatedAirline{rated("S7", 3.5, 3, 1, true)},
		AirlinesLoaded: true,
		Cities:         []string{"Москва", "Сочи"},
		CitiesLoaded:   true,
	})
	rq.NoError(err)
	rq.Len(patches, 4)

	rq.Equal(view.IDAllAirlinesList, patches[0].Target)
	rq.Equal(view.OpReplace, patches[0].Op)
	rq.Contains(patches[0].HTML, "<h3>S7</h3>")
	rq.Contains(patches[0].HTML, "Количество перелетов: 42")
	rq.Equal(5, strings.Count(patches[0].HTML, `class="star"`))

	rq.Equal(view.Patch{
		Target:  view.IDAirlineSelect,
		Op:      view.OpAppend,
		Options: []view.Option{{Value: "S7", Text: "S7"}},
	}, patches[1])

	cities := []view.Option{{Value: "Москва", Text: "Москва"}, {Value: "Сочи", Text: "Сочи"}}
	rq.Equal(view.Patch{Target: view.IDFrom, Op: view.OpAppend, Options: cities}, patches[2])
	rq.Equal(view.Patch{Target: view.IDTo, Op: view.OpAppend, Options: cities}, patches[3])

	rq.Len(state.Airlines, 1)
	rq.Equal([]string{"Москва", "Сочи"}, state.Cities)
}

func TestUpdateLoadedPartial(t *testing.T) {
	rq := require.New(t)

	_, patches, err := view.Update(view.State{}, view.Loaded{
		Cities:       []string{"Москва"},
		CitiesLoaded: true,
	})
	rq.NoError(err)
	rq.Len(patches, 2)
	rq.Equal(view.IDFrom, patches[0].Target)
	rq.Equal(view.IDTo, patches[1].Target)

	_, patches, err = view.Update(view.State{}, view.Loaded{})
	rq.NoError(err)
	rq.Empty(patches)
}

func TestUpdateSearched(t *testing.T) {
	rq := require.New(t)

	results := ranking.Rank([]entity.FlightResult{
		{AirlineName: "Победа", DepartureAirport: "SVO", ArrivalAirport: "AER", OnTimeFlights: 1, TotalFlights: 10, Summary: 40, FlightCount: 10},
		{AirlineName: "S7", DepartureAirport: "DME", ArrivalAirport: "AER", OnTimeFlights: 8, TotalFlights: 10, Summary: 20, FlightCount: 10},
	})
	query := value.SearchQuery{From: "Москва", To: "Сочи", Date: "2024-05-01"}

	before := view.State{}
	state, patches, err := view.Update(before, view.Searched{Query: query, Results: results})
	rq.NoError(err)

	rq.Len(patches, 2)
	rq.Equal(view.IDAirlinesList, patches[0].Target)
	rq.Equal(view.OpReplace, patches[0].Op)
	rq.Equal(view.Patch{Target: view.IDAirlinesList, Op: view.OpScrollIntoView, Behavior: view.BehaviorSmooth}, patches[1])

	html := patches[0].HTML
	rq.Contains(html, "🥇")
	rq.Contains(html, "🥈")
	rq.NotContains(html, "🥉")
	rq.Contains(html, "Эта компания чаще всего прилетает вовремя")
	rq.Contains(html, "⏱️")
	rq.Contains(html, "Средняя задержка рейса: 20.00")
	rq.Less(strings.Index(html, "S7"), strings.Index(html, "Победа"))

	rq.True(state.Searched)
	rq.Equal(query, state.Query)
	rq.False(before.Searched, "the previous state must stay untouched")
}

func TestUpdateSearchedEscapesHTML(t *testing.T) {
	rq := require.New(t)

	_, patches, err := view.Update(view.State{}, view.Searched{Results: ranking.Rank([]entity.FlightResult{
		{AirlineName: "<script>alert(1)</script>", TotalFlights: 1},
	})})
	rq.NoError(err)
	rq.NotContains(patches[0].HTML, "<script>")
}

func TestUpdateChart(t *testing.T) {
	rq := require.New(t)

	state, patches, err := view.Update(view.State{}, view.ChartUpdated{CanvasID: "c1", Generation: 2, Airlines: []string{"S7"}})
	rq.NoError(err)
	rq.Equal([]view.Patch{{Target: view.IDFrequencyChart, Op: view.OpSetImage, Src: "/charts/c1.png?v=2"}}, patches)
	rq.Equal(uint64(2), state.Chart.Generation)

	stale, patches, err := view.Update(state, view.ChartUpdated{CanvasID: "c1", Generation: 1, Airlines: []string{"Победа"}})
	rq.NoError(err)
	rq.Empty(patches)
	rq.Equal(state, stale)
}
