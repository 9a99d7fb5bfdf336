package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient blends between two colors in HCL space, which keeps the
// perceived brightness even across the blend.
type Gradient struct {
	from, to colorful.Color
}

// NewGradient creates a gradient. Non-hex colors (ANSI indexes) blend as gray.
func NewGradient(from, to lipgloss.Color) Gradient {
	return Gradient{from: toColorful(from), to: toColorful(to)}
}

// At returns the color at position t, clamped to [0, 1].
func (g Gradient) At(t float64) lipgloss.Color {
	switch {
	case t <= 0:
		return lipgloss.Color(g.from.Hex())
	case t >= 1:
		return lipgloss.Color(g.to.Hex())
	}
	return lipgloss.Color(g.from.BlendHcl(g.to, t).Clamped().Hex())
}

// Step returns the color of step i of n evenly spaced steps.
func (g Gradient) Step(i, n int) lipgloss.Color {
	if n < 2 {
		return g.At(0)
	}
	return g.At(float64(i) / float64(n-1))
}

// Render colors text one grapheme at a time along the gradient.
func (g Gradient) Render(text string, bold bool) string {
	clusters := graphemes(text)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(g.Step(i, len(clusters))).Bold(bold)
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

func graphemes(text string) []string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
}
