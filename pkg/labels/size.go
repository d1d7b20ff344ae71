// Package labels sizes screen-space text labels and pushes overlapping ones
// apart.
package labels

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Metrics are the px sizes used to estimate a label's footprint. Glyph
// widths are averages for the renderer's label font.
type Metrics struct {
	Padding     float64 `toml:"padding" yaml:"padding" json:"padding"`
	Gap         float64 `toml:"gap" yaml:"gap" json:"gap"`
	LineHeight  float64 `toml:"line_height" yaml:"line_height" json:"line_height"`
	WideGlyph   float64 `toml:"wide_glyph" yaml:"wide_glyph" json:"wide_glyph"`
	UpperGlyph  float64 `toml:"upper_glyph" yaml:"upper_glyph" json:"upper_glyph"`
	LowerGlyph  float64 `toml:"lower_glyph" yaml:"lower_glyph" json:"lower_glyph"`
	NarrowGlyph float64 `toml:"narrow_glyph" yaml:"narrow_glyph" json:"narrow_glyph"`
	DigitGlyph  float64 `toml:"digit_glyph" yaml:"digit_glyph" json:"digit_glyph"`
}

// DefaultMetrics match a 12px sans label with 6px padding.
func DefaultMetrics() Metrics {
	return Metrics{
		Padding:     6,
		Gap:         4,
		LineHeight:  16,
		WideGlyph:   14,
		UpperGlyph:  8.5,
		LowerGlyph:  7,
		NarrowGlyph: 3.5,
		DigitGlyph:  7,
	}
}

const narrowRunes = "il.,:;!|'`()[]{}/\\"

// GlyphWidth estimates one rune. East Asian wide runes (Hangul, CJK, full
// width forms) use WideGlyph; zero-width runes take no space.
func (m Metrics) GlyphWidth(r rune) float64 {
	switch rw := runewidth.RuneWidth(r); {
	case rw == 0:
		return 0
	case rw >= 2:
		return m.WideGlyph
	}
	switch {
	case r == ' ' || strings.ContainsRune(narrowRunes, r):
		return m.NarrowGlyph
	case unicode.IsDigit(r):
		return m.DigitGlyph
	case unicode.IsUpper(r):
		return m.UpperGlyph
	default:
		return m.LowerGlyph
	}
}

// LineWidth estimates the px width of one line of text.
func (m Metrics) LineWidth(line string) float64 {
	w := 0.0
	for _, r := range line {
		w += m.GlyphWidth(r)
	}
	return w
}

// Size returns the padded box size of a possibly multi-line label.
func (m Metrics) Size(text string) (w, h float64) {
	lines := strings.Split(text, "\n")
	for _, l := range lines {
		w = max(w, m.LineWidth(l))
	}
	h = float64(len(lines)) * m.LineHeight
	return w + 2*m.Padding, h + 2*m.Padding
}
