package view_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"airstats/internal/domain/entity"
	"airstats/internal/domain/value"
	"airstats/internal/view"
)

func TestRenderPage(t *testing.T) {
	state := view.State{
		Airlines: []entity.RatedAirline{rated("S7", 5, 5, 0, false), rated("Победа", 1, 1, 4, false)},
		Cities:   []string{"Москва", "Сочи"},
		Query:    value.SearchQuery{From: "Москва", To: "Сочи", Date: "2024-05-01"},
		Chart:    view.ChartState{CanvasID: "c1", Generation: 3, Airlines: []string{"Победа"}},
	}

	testCases := []struct {
		name     string
		init     string
		contains []string
		excludes []string
	}{
		{
			name: "server rendered",
			init: view.InitServer,
			contains: []string{
				`data-init="server"`,
				`<option value="Москва" selected>Москва</option>`,
				`<option value="Сочи" selected>Сочи</option>`,
				`<option value="Победа" selected>Победа</option>`,
				`<option value="S7">S7</option>`,
				`src="/charts/c1.png?v=3"`,
				`value="2024-05-01"`,
				`<h3>S7</h3>`,
			},
		},
		{
			name:     "client shell",
			init:     view.InitClient,
			contains: []string{`data-init="client"`, `id="all-airlines-list"`, `id="flight-frequency-chart"`, `/static/patch.js`},
			excludes: []string{`<h3>S7</h3>`, `<option value="S7">`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var buf bytes.Buffer
			rq.NoError(view.RenderPage(&buf, state, tc.init))

			for _, s := range tc.contains {
				rq.Contains(buf.String(), s)
			}

			for _, s := range tc.excludes {
				rq.NotContains(buf.String(), s)
			}
		})
	}
}

func TestPatchScriptEmbedded(t *testing.T) {
	require.Contains(t, string(view.PatchScript), "scroll-into-view")
}
