package renderer

import "github.com/theoremus-urban-solutions/transport-catalogue/svg"

// Settings controls map geometry and styling
type Settings struct {
	Width             float64
	Height            float64
	Padding           float64
	LineWidth         float64
	StopRadius        float64
	BusLabelFontSize  int
	BusLabelOffset    svg.Point
	StopLabelFontSize int
	StopLabelOffset   svg.Point
	UnderlayerColor   svg.Color
	UnderlayerWidth   float64
	ColorPalette      []svg.Color
}

// DefaultSettings returns the settings used when the input omits render_settings
func DefaultSettings() Settings {
	return Settings{
		Width:             1200,
		Height:            1200,
		Padding:           50,
		LineWidth:         14,
		StopRadius:        5,
		BusLabelFontSize:  20,
		BusLabelOffset:    svg.Point{X: 7, Y: 15},
		StopLabelFontSize: 20,
		StopLabelOffset:   svg.Point{X: 7, Y: -3},
		UnderlayerColor:   svg.RGBA(255, 255, 255, 0.85),
		UnderlayerWidth:   3,
		ColorPalette:      []svg.Color{svg.Named("green"), svg.RGB(255, 160, 0), svg.Named("red")},
	}
}

// paletteColor cycles through the palette; an empty palette yields an unset color
func (s Settings) paletteColor(i int) svg.Color {
	if len(s.ColorPalette) == 0 {
		return svg.Color{}
	}
	return s.ColorPalette[i%len(s.ColorPalette)]
}
