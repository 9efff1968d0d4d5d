package view

import (
	"fmt"
	"net/url"

	"airstats/internal/domain/entity"
	"airstats/internal/domain/value"
)

// State — состояние страницы. Update не изменяет переданное состояние,
// а возвращает новое.
type State struct {
	Airlines []entity.RatedAirline
	Cities   []string
	Query    value.SearchQuery
	Results  []entity.RankedFlight
	Searched bool
	Chart    ChartState
}

type ChartState struct {
	CanvasID   string
	Generation uint64
	Airlines   []string
}

// Src — адрес PNG графика; поколение в query не даёт браузеру взять старую картинку из кэша.
func (c ChartState) Src() string {
	if c.CanvasID == "" || c.Generation == 0 {
		return ""
	}

	return fmt.Sprintf("/charts/%s.png?v=%d", url.PathEscape(c.CanvasID), c.Generation)
}

type Event interface {
	event()
}

// Loaded — результат начальной загрузки. Части загружаются независимо:
// незагруженная часть не даёт патчей.
type Loaded struct {
	Airlines       []entity.RatedAirline
	AirlinesLoaded bool
	Cities         []string
	CitiesLoaded   bool
}

// Searched — результат отправки формы flight-search.
type Searched struct {
	Query   value.SearchQuery
	Results []entity.RankedFlight
}

// ChartUpdated — на холсте показан новый график.
type ChartUpdated struct {
	CanvasID   string
	Generation uint64
	Airlines   []string
}

func (Loaded) event()       {}
func (Searched) event()     {}
func (ChartUpdated) event() {}
