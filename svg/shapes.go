package svg

import (
	"strconv"
	"strings"
)

// Point is a position in document coordinates
type Point struct {
	X, Y float64
}

// LineCap is the stroke-linecap attribute. The zero value is not written.
type LineCap uint8

const (
	LineCapUnset LineCap = iota
	LineCapButt
	LineCapRound
	LineCapSquare
)

func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return ""
	}
}

// LineJoin is the stroke-linejoin attribute. The zero value is not written.
type LineJoin uint8

const (
	LineJoinUnset LineJoin = iota
	LineJoinArcs
	LineJoinBevel
	LineJoinMiter
	LineJoinMiterClip
	LineJoinRound
)

func (j LineJoin) String() string {
	switch j {
	case LineJoinArcs:
		return "arcs"
	case LineJoinBevel:
		return "bevel"
	case LineJoinMiter:
		return "miter"
	case LineJoinMiterClip:
		return "miter-clip"
	case LineJoinRound:
		return "round"
	default:
		return ""
	}
}

// PathProps are the fill and stroke attributes shared by all shapes.
// StrokeWidth is written only when positive.
type PathProps struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	LineCap     LineCap
	LineJoin    LineJoin
}

func (p PathProps) writeAttrs(b *strings.Builder) {
	if p.Fill.IsSet() {
		writeAttr(b, "fill", p.Fill.String())
	}
	if p.Stroke.IsSet() {
		writeAttr(b, "stroke", p.Stroke.String())
	}
	if p.StrokeWidth > 0 {
		writeAttr(b, "stroke-width", formatNumber(p.StrokeWidth))
	}
	if p.LineCap != LineCapUnset {
		writeAttr(b, "stroke-linecap", p.LineCap.String())
	}
	if p.LineJoin != LineJoinUnset {
		writeAttr(b, "stroke-linejoin", p.LineJoin.String())
	}
}

// Object is anything that can be added to a Document
type Object interface {
	writeTo(b *strings.Builder)
}

type Circle struct {
	Center Point
	Radius float64
	PathProps
}

func (c Circle) writeTo(b *strings.Builder) {
	b.WriteString(`<circle cx="`)
	b.WriteString(formatNumber(c.Center.X))
	b.WriteString(`" cy="`)
	b.WriteString(formatNumber(c.Center.Y))
	b.WriteString(`" r="`)
	b.WriteString(formatNumber(c.Radius))
	b.WriteString(`" `)
	c.writeAttrs(b)
	b.WriteString("/>")
}

type Polyline struct {
	Points []Point
	PathProps
}

func (p Polyline) writeTo(b *strings.Builder) {
	b.WriteString(`<polyline points="`)
	for i, pt := range p.Points {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(formatNumber(pt.X))
		b.WriteString(",")
		b.WriteString(formatNumber(pt.Y))
	}
	b.WriteString(`"`)
	p.writeAttrs(b)
	b.WriteString("/>")
}

// Text is a label anchored at Position and shifted by Offset
type Text struct {
	Position   Point
	Offset     Point
	FontSize   uint32
	FontFamily string
	FontWeight string
	Data       string
	PathProps
}

func (t Text) writeTo(b *strings.Builder) {
	b.WriteString("<text")
	t.writeAttrs(b)
	writeAttr(b, "x", formatNumber(t.Position.X))
	writeAttr(b, "y", formatNumber(t.Position.Y))
	writeAttr(b, "dx", formatNumber(t.Offset.X))
	writeAttr(b, "dy", formatNumber(t.Offset.Y))
	writeAttr(b, "font-size", strconv.FormatUint(uint64(t.FontSize), 10))
	if t.FontFamily != "" {
		writeAttr(b, "font-family", t.FontFamily)
	}
	if t.FontWeight != "" {
		writeAttr(b, "font-weight", t.FontWeight)
	}
	b.WriteString(">")
	b.WriteString(xmlEscape(t.Data))
	b.WriteString("</text>")
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(value)
	b.WriteString(`"`)
}

// formatNumber prints up to six significant digits
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
