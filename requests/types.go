package requests

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/routing"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// Request types
const (
	TypeStop  = "Stop"
	TypeBus   = "Bus"
	TypeMap   = "Map"
	TypeRoute = "Route"
)

type SerializationSettings struct {
	File string `json:"file" validate:"required"`
}

// RoutingSettings as written in the input. BusVelocity is in km/h.
type RoutingSettings struct {
	BusWaitTime int     `json:"bus_wait_time" validate:"gte=0"`
	BusVelocity float64 `json:"bus_velocity" validate:"gt=0"`
}

// Settings converts to routing units
func (s RoutingSettings) Settings() routing.Settings {
	return routing.Settings{
		BusWaitTime: s.BusWaitTime,
		BusVelocity: routing.KmhToMetersPerMinute(s.BusVelocity),
	}
}

// Color is a color as written in the input: a name, [r, g, b] or [r, g, b, opacity]
type Color struct {
	svg.Color
}

func (c *Color) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		c.Color = svg.Named(name)
		return nil
	}
	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("color must be a string or an array: %w", err)
	}
	if len(parts) != 3 && len(parts) != 4 {
		return fmt.Errorf("color array must have 3 or 4 elements, got %d", len(parts))
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		if parts[i] < 0 || parts[i] > 255 || parts[i] != float64(int(parts[i])) {
			return fmt.Errorf("color channel %v is not an integer in [0, 255]", parts[i])
		}
		ch[i] = uint8(parts[i])
	}
	if len(parts) == 4 {
		c.Color = svg.RGBA(ch[0], ch[1], ch[2], parts[3])
		return nil
	}
	c.Color = svg.RGB(ch[0], ch[1], ch[2])
	return nil
}

// RenderSettings as written in the input. Omitted fields keep their defaults.
type RenderSettings struct {
	Width             float64    `json:"width" validate:"gt=0"`
	Height            float64    `json:"height" validate:"gt=0"`
	Padding           float64    `json:"padding" validate:"gte=0"`
	LineWidth         float64    `json:"line_width" validate:"gte=0"`
	StopRadius        float64    `json:"stop_radius" validate:"gte=0"`
	BusLabelFontSize  int        `json:"bus_label_font_size" validate:"gte=0"`
	BusLabelOffset    [2]float64 `json:"bus_label_offset"`
	StopLabelFontSize int        `json:"stop_label_font_size" validate:"gte=0"`
	StopLabelOffset   [2]float64 `json:"stop_label_offset"`
	UnderlayerColor   Color      `json:"underlayer_color"`
	UnderlayerWidth   float64    `json:"underlayer_width" validate:"gte=0"`
	ColorPalette      []Color    `json:"color_palette" validate:"min=1"`
}

// DefaultRenderSettings mirrors renderer.DefaultSettings
func DefaultRenderSettings() RenderSettings {
	d := renderer.DefaultSettings()
	palette := make([]Color, len(d.ColorPalette))
	for i, c := range d.ColorPalette {
		palette[i] = Color{c}
	}
	return RenderSettings{
		Width:             d.Width,
		Height:            d.Height,
		Padding:           d.Padding,
		LineWidth:         d.LineWidth,
		StopRadius:        d.StopRadius,
		BusLabelFontSize:  d.BusLabelFontSize,
		BusLabelOffset:    [2]float64{d.BusLabelOffset.X, d.BusLabelOffset.Y},
		StopLabelFontSize: d.StopLabelFontSize,
		StopLabelOffset:   [2]float64{d.StopLabelOffset.X, d.StopLabelOffset.Y},
		UnderlayerColor:   Color{d.UnderlayerColor},
		UnderlayerWidth:   d.UnderlayerWidth,
		ColorPalette:      palette,
	}
}

func (r *RenderSettings) UnmarshalJSON(data []byte) error {
	type plain RenderSettings
	p := plain(DefaultRenderSettings())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = RenderSettings(p)
	return nil
}

// Settings converts to renderer settings
func (r RenderSettings) Settings() renderer.Settings {
	palette := make([]svg.Color, len(r.ColorPalette))
	for i, c := range r.ColorPalette {
		palette[i] = c.Color
	}
	return renderer.Settings{
		Width:             r.Width,
		Height:            r.Height,
		Padding:           r.Padding,
		LineWidth:         r.LineWidth,
		StopRadius:        r.StopRadius,
		BusLabelFontSize:  r.BusLabelFontSize,
		BusLabelOffset:    svg.Point{X: r.BusLabelOffset[0], Y: r.BusLabelOffset[1]},
		StopLabelFontSize: r.StopLabelFontSize,
		StopLabelOffset:   svg.Point{X: r.StopLabelOffset[0], Y: r.StopLabelOffset[1]},
		UnderlayerColor:   r.UnderlayerColor.Color,
		UnderlayerWidth:   r.UnderlayerWidth,
		ColorPalette:      palette,
	}
}

// BaseRequest is a Stop or Bus record. Stop uses Latitude, Longitude and
// RoadDistances; Bus uses Stops and IsRoundtrip.
type BaseRequest struct {
	Type          string             `json:"type" validate:"required"`
	Name          string             `json:"name" validate:"required"`
	Latitude      float64            `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64            `json:"longitude" validate:"gte=-180,lte=180"`
	RoadDistances map[string]float64 `json:"road_distances,omitempty" validate:"dive,keys,required,endkeys,gte=0"`
	Stops         []string           `json:"stops,omitempty" validate:"dive,required"`
	IsRoundtrip   bool               `json:"is_roundtrip,omitempty"`
}

// BaseDocument is the make_base input
type BaseDocument struct {
	SerializationSettings *SerializationSettings `json:"serialization_settings"`
	RoutingSettings       *RoutingSettings       `json:"routing_settings" validate:"required"`
	RenderSettings        *RenderSettings        `json:"render_settings"`
	BaseRequests          []BaseRequest          `json:"base_requests" validate:"dive"`
}

// Render returns the render settings, falling back to defaults
func (d *BaseDocument) Render() renderer.Settings {
	if d.RenderSettings == nil {
		return renderer.DefaultSettings()
	}
	return d.RenderSettings.Settings()
}

// StatRequest is one query. Bus and Stop use Name, Route uses From and To.
type StatRequest struct {
	ID   int    `json:"id" validate:"gte=0"`
	Type string `json:"type" validate:"required"`
	Name string `json:"name,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// StatDocument is the process_requests input
type StatDocument struct {
	SerializationSettings *SerializationSettings `json:"serialization_settings"`
	StatRequests          []StatRequest          `json:"stat_requests" validate:"dive"`
}
