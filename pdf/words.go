package pdf

import (
	"math"
	"strings"
	"unicode"

	"github.com/fwojciec/pricegrid"
	lpdf "github.com/ledongthuc/pdf"
)

// DefaultWordGap separates glyphs more than a quarter of the font size apart.
const DefaultWordGap = 0.25

// glyph is a single character placed on the page in PDF coordinates.
type glyph struct {
	r        rune
	x, w     float64
	y        float64
	fontSize float64
}

// Words assembles text runs, in content-stream order, into word tokens.
// A word ends at whitespace, at a change of baseline, when the text moves
// backwards, or at a horizontal gap wider than gap times the font size.
// PDF coordinates grow upward, so tokens are flipped against pageHeight.
//
// Every token's top edge sits one body size above its baseline, the body
// size being the page's most common font size. Words sharing a baseline
// therefore share Y0 whatever their own font size, so a bold label and
// the regular prices beside it cluster into one row.
func Words(texts []lpdf.Text, pageHeight, gap float64) []pricegrid.Token {
	var tokens []pricegrid.Token
	var word []glyph

	all := glyphs(texts)
	ascent := bodySize(all)

	flush := func() {
		if len(word) > 0 {
			tokens = append(tokens, token(word, pageHeight, ascent))
			word = word[:0]
		}
	}

	for _, g := range all {
		if unicode.IsSpace(g.r) {
			flush()
			continue
		}
		if len(word) > 0 && breaksWord(word[len(word)-1], g, gap) {
			flush()
		}
		word = append(word, g)
	}
	flush()

	return tokens
}

// glyphs splits multi-character text runs into evenly spaced glyphs.
func glyphs(texts []lpdf.Text) []glyph {
	var out []glyph
	for _, t := range texts {
		runes := []rune(t.S)
		if len(runes) == 0 {
			continue
		}
		w := t.W / float64(len(runes))
		for i, r := range runes {
			out = append(out, glyph{
				r:        r,
				x:        t.X + float64(i)*w,
				w:        w,
				y:        t.Y,
				fontSize: t.FontSize,
			})
		}
	}
	return out
}

func breaksWord(prev, next glyph, gap float64) bool {
	size := math.Max(prev.fontSize, next.fontSize)
	if size <= 0 {
		size = 1
	}
	if math.Abs(next.y-prev.y) > size/2 {
		return true
	}
	end := prev.x + prev.w
	if next.x < prev.x {
		return true
	}
	return next.x-end > gap*size
}

// bodySize returns the font size carried by the most glyphs, preferring
// the smaller size on a tie.
func bodySize(glyphs []glyph) float64 {
	counts := make(map[float64]int)
	for _, g := range glyphs {
		if g.fontSize > 0 && !unicode.IsSpace(g.r) {
			counts[g.fontSize]++
		}
	}
	best, bestCount := 0.0, 0
	for size, n := range counts {
		if n > bestCount || (n == bestCount && size < best) {
			best, bestCount = size, n
		}
	}
	return best
}

func token(word []glyph, pageHeight, ascent float64) pricegrid.Token {
	var b strings.Builder
	x0, x1 := math.Inf(1), math.Inf(-1)
	baseline := word[0].y
	for _, g := range word {
		b.WriteRune(g.r)
		x0 = math.Min(x0, g.x)
		x1 = math.Max(x1, g.x+g.w)
	}
	return pricegrid.Token{
		Text: b.String(),
		X0:   x0,
		Y0:   pageHeight - (baseline + ascent),
		X1:   x1,
		Y1:   pageHeight - baseline,
	}
}
