package svg

import (
	"strconv"
	"strings"
)

type colorKind uint8

const (
	colorUnset colorKind = iota
	colorNamed
	colorRGB
	colorRGBA
)

// Color is unset, a named color, rgb or rgba. The zero value is unset and is
// not written out.
type Color struct {
	kind    colorKind
	name    string
	r, g, b uint8
	opacity float64
}

// NoneColor disables fill or stroke
var NoneColor = Named("none")

func Named(name string) Color { return Color{kind: colorNamed, name: name} }

func RGB(r, g, b uint8) Color { return Color{kind: colorRGB, r: r, g: g, b: b} }

func RGBA(r, g, b uint8, opacity float64) Color {
	return Color{kind: colorRGBA, r: r, g: g, b: b, opacity: opacity}
}

// IsSet reports whether the color carries a value
func (c Color) IsSet() bool { return c.kind != colorUnset }

// Name returns the color name for named colors
func (c Color) Name() (string, bool) { return c.name, c.kind == colorNamed }

// RGB returns the channels for rgb and rgba colors
func (c Color) RGB() (r, g, b uint8, ok bool) {
	return c.r, c.g, c.b, c.kind == colorRGB || c.kind == colorRGBA
}

// Opacity returns the alpha channel of an rgba color
func (c Color) Opacity() (float64, bool) { return c.opacity, c.kind == colorRGBA }

func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return c.name
	case colorRGB:
		var b strings.Builder
		b.WriteString("rgb(")
		writeChannels(&b, c)
		b.WriteString(")")
		return b.String()
	case colorRGBA:
		var b strings.Builder
		b.WriteString("rgba(")
		writeChannels(&b, c)
		b.WriteString(",")
		b.WriteString(formatNumber(c.opacity))
		b.WriteString(")")
		return b.String()
	default:
		return ""
	}
}

func writeChannels(b *strings.Builder, c Color) {
	b.WriteString(strconv.Itoa(int(c.r)))
	b.WriteString(",")
	b.WriteString(strconv.Itoa(int(c.g)))
	b.WriteString(",")
	b.WriteString(strconv.Itoa(int(c.b)))
}
