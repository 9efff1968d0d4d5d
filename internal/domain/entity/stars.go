package entity

import "strings"

// StarCount — длина любого ряда звёзд.
const StarCount = 5

type Glyph string

const (
	GlyphFull  Glyph = "★"
	GlyphHalf  Glyph = "✫"
	GlyphEmpty Glyph = "☆"
)

// StarRow — ряд звёзд рейтинга: полные, не больше одной половинки, пустые.
type StarRow struct {
	Full  int
	Half  bool
	Empty int
}

func (r StarRow) Glyphs() []Glyph {
	glyphs := make([]Glyph, 0, StarCount)

	for range r.Full {
		glyphs = append(glyphs, GlyphFull)
	}

	if r.Half {
		glyphs = append(glyphs, GlyphHalf)
	}

	for range r.Empty {
		glyphs = append(glyphs, GlyphEmpty)
	}

	return glyphs
}

func (r StarRow) String() string {
	var sb strings.Builder

	for _, g := range r.Glyphs() {
		sb.WriteString(string(g))
	}

	return sb.String()
}
