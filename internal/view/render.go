package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"slices"

	"airstats/internal/domain/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/patch.js
var PatchScript []byte

//nolint:gochecknoglobals
var templates = template.Must(template.New("view").Funcs(template.FuncMap{
	"percent": func(ratio float64) string { return fmt.Sprintf("%.0f%%", ratio*100) },
	"minutes": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"medal":   medalGlyph,
	"contains": func(list []string, v string) bool {
		return slices.Contains(list, v)
	},
}).ParseFS(templatesFS, "templates/*.html"))

const (
	InitClient = "client"
	InitServer = "server"
)

type page struct {
	State
	Init     string
	ChartSrc string
}

// RenderPage рисует страницу целиком. mode == InitClient — пустой каркас,
// который наполняет patch.js через /ui/init.
func RenderPage(w io.Writer, state State, mode string) error {
	err := templates.ExecuteTemplate(w, "page", page{
		State:    state,
		Init:     mode,
		ChartSrc: state.Chart.Src(),
	})
	if err != nil {
		return fmt.Errorf("templates.ExecuteTemplate: %w", err)
	}

	return nil
}

func renderFragment(name string, data any) (string, error) {
	var buf bytes.Buffer

	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("templates.ExecuteTemplate %s: %w", name, err)
	}

	return buf.String(), nil
}

func medalGlyph(m entity.Medal) string {
	switch m {
	case entity.MedalGold:
		return "🥇"
	case entity.MedalSilver:
		return "🥈"
	case entity.MedalBronze:
		return "🥉"
	default:
		return ""
	}
}

func airlineOption(a entity.RatedAirline, _ int) Option {
	return Option{Value: a.Name, Text: a.Name}
}
