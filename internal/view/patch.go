package view

// Op — операция над DOM, которую выполняет static/patch.js.
type Op string

const (
	OpReplace        Op = "replace"
	OpAppend         Op = "append"
	OpScrollIntoView Op = "scroll-into-view"
	OpSetImage       Op = "set-image"
)

const BehaviorSmooth = "smooth"

// Patch описывает одно изменение DOM. Патчи применяются по порядку
// и независимы друг от друга.
type Patch struct {
	Target   string
	Op       Op
	HTML     string
	Src      string
	Behavior string
	Options  []Option
}

type Option struct {
	Value string
	Text  string
}

// Идентификаторы элементов страницы.
const (
	IDFlightSearch    = "flight-search"
	IDFrom            = "from"
	IDTo              = "to"
	IDDate            = "date"
	IDAirlineSelect   = "airline-select"
	IDUpdateChart     = "update-chart"
	IDAllAirlinesList = "all-airlines-list"
	IDAirlinesList    = "airlines-list"
	IDFrequencyChart  = "flight-frequency-chart"
)
