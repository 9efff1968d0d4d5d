package view

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Update применяет событие к состоянию и возвращает новое состояние
// вместе с патчами DOM.
func Update(state State, event Event) (State, []Patch, error) {
	switch e := event.(type) {
	case Loaded:
		return loaded(state, e)
	case Searched:
		return searched(state, e)
	case ChartUpdated:
		return chartUpdated(state, e), chartPatches(state, e), nil
	default:
		return state, nil, fmt.Errorf("view.Update: unknown event %T", event)
	}
}

func loaded(state State, e Loaded) (State, []Patch, error) {
	var patches []Patch

	if e.AirlinesLoaded {
		html, err := renderFragment("airlines", e.Airlines)
		if err != nil {
			return state, nil, err
		}

		state.Airlines = slices.Clone(e.Airlines)

		patches = append(patches,
			Patch{Target: IDAllAirlinesList, Op: OpReplace, HTML: html},
			Patch{Target: IDAirlineSelect, Op: OpAppend, Options: lo.Map(e.Airlines, airlineOption)},
		)
	}

	if e.CitiesLoaded {
		state.Cities = slices.Clone(e.Cities)
		options := lo.Map(e.Cities, func(city string, _ int) Option {
			return Option{Value: city, Text: city}
		})

		patches = append(patches,
			Patch{Target: IDFrom, Op: OpAppend, Options: options},
			Patch{Target: IDTo, Op: OpAppend, Options: slices.Clone(options)},
		)
	}

	return state, patches, nil
}

func searched(state State, e Searched) (State, []Patch, error) {
	html, err := renderFragment("results", e.Results)
	if err != nil {
		return state, nil, err
	}

	state.Query = e.Query
	state.Results = slices.Clone(e.Results)
	state.Searched = true

	// Два независимых обработчика отправки формы: перерисовка списка и прокрутка к нему.
	return state, []Patch{
		{Target: IDAirlinesList, Op: OpReplace, HTML: html},
		{Target: IDAirlinesList, Op: OpScrollIntoView, Behavior: BehaviorSmooth},
	}, nil
}

func chartUpdated(state State, e ChartUpdated) State {
	if !newerChart(state, e) {
		return state
	}

	state.Chart = ChartState{
		CanvasID:   e.CanvasID,
		Generation: e.Generation,
		Airlines:   slices.Clone(e.Airlines),
	}

	return state
}

func chartPatches(state State, e ChartUpdated) []Patch {
	if !newerChart(state, e) {
		return nil
	}

	src := ChartState{CanvasID: e.CanvasID, Generation: e.Generation}.Src()

	return []Patch{{Target: IDFrequencyChart, Op: OpSetImage, Src: src}}
}

func newerChart(state State, e ChartUpdated) bool {
	return state.Chart.CanvasID != e.CanvasID || e.Generation > state.Chart.Generation
}
