package svg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_String(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"unset", Color{}, ""},
		{"named", Named("red"), "red"},
		{"none", NoneColor, "none"},
		{"rgb", RGB(255, 160, 0), "rgb(255,160,0)"},
		{"rgba", RGBA(255, 255, 255, 0.85), "rgba(255,255,255,0.85)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color.String())
		})
	}
	assert.False(t, Color{}.IsSet())
	assert.True(t, NoneColor.IsSet())
}

func TestColor_Accessors(t *testing.T) {
	r, g, b, ok := RGBA(1, 2, 3, 0.5).RGB()
	require.True(t, ok)
	assert.Equal(t, []uint8{1, 2, 3}, []uint8{r, g, b})
	op, ok := RGBA(1, 2, 3, 0.5).Opacity()
	assert.True(t, ok)
	assert.Equal(t, 0.5, op)

	_, ok = RGB(1, 2, 3).Opacity()
	assert.False(t, ok)
	name, ok := Named("green").Name()
	assert.True(t, ok)
	assert.Equal(t, "green", name)
}

func TestShapes(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
		want string
	}{
		{
			"circle",
			Circle{Center: Point{20, 20}, Radius: 5, PathProps: PathProps{Fill: Named("white")}},
			`<circle cx="20" cy="20" r="5"  fill="white"/>`,
		},
		{
			"polyline",
			Polyline{
				Points: []Point{{1, 2}, {3.5, 4}},
				PathProps: PathProps{
					Fill:        NoneColor,
					Stroke:      RGB(255, 160, 0),
					StrokeWidth: 14,
					LineCap:     LineCapRound,
					LineJoin:    LineJoinRound,
				},
			},
			`<polyline points="1,2 3.5,4" fill="none" stroke="rgb(255,160,0)" stroke-width="14" stroke-linecap="round" stroke-linejoin="round"/>`,
		},
		{
			"text",
			Text{
				Position:   Point{10, 20},
				Offset:     Point{7, -3},
				FontSize:   20,
				FontFamily: "Verdana",
				Data:       `Tom & "Jerry's" <stop>`,
				PathProps:  PathProps{Fill: Named("black")},
			},
			`<text fill="black" x="10" y="20" dx="7" dy="-3" font-size="20" font-family="Verdana">Tom &amp; &quot;Jerry&apos;s&quot; &lt;stop&gt;</text>`,
		},
		{
			"bold text without family",
			Text{FontSize: 12, FontWeight: "bold", Data: "14"},
			`<text x="0" y="0" dx="0" dy="0" font-size="12" font-weight="bold">14</text>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Document
			d.Add(tt.obj)
			want := "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n" +
				"<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n" +
				"  " + tt.want + "\n" +
				"</svg>"
			assert.Equal(t, want, d.String())
		})
	}
}

func TestDocument_WriteTo(t *testing.T) {
	var d Document
	d.Add(Circle{Radius: 1})
	d.Add(Circle{Radius: 2})
	assert.Equal(t, 2, d.Len())

	var buf bytes.Buffer
	n, err := d.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, d.String(), buf.String())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "99.2283", formatNumber(99.228316))
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "-3", formatNumber(-3))
	assert.Equal(t, "1e+06", formatNumber(1000000))
}
