// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for render settings.
var (
	// ErrInvalidSettings indicates render settings outside their ranges.
	ErrInvalidSettings = errors.New("render: invalid settings")

	// ErrInvalidColor indicates a color that is neither a name, an
	// [r, g, b] triple nor an [r, g, b, opacity] quadruple.
	ErrInvalidColor = errors.New("render: invalid color")
)

// Settings control the look of the map. The JSON form matches the
// render_settings object of a request document.
type Settings struct {
	Width   float64 `json:"width" validate:"gte=0,lte=100000"`
	Height  float64 `json:"height" validate:"gte=0,lte=100000"`
	Padding float64 `json:"padding" validate:"gte=0"`

	LineWidth  float64 `json:"line_width" validate:"gte=0,lte=100000"`
	StopRadius float64 `json:"stop_radius" validate:"gte=0,lte=100000"`

	BusLabelFontSize  int   `json:"bus_label_font_size" validate:"gte=0,lte=100000"`
	BusLabelOffset    Point `json:"bus_label_offset"`
	StopLabelFontSize int   `json:"stop_label_font_size" validate:"gte=0,lte=100000"`
	StopLabelOffset   Point `json:"stop_label_offset"`

	UnderlayerColor Color   `json:"underlayer_color" validate:"required"`
	UnderlayerWidth float64 `json:"underlayer_width" validate:"gte=0,lte=100000"`

	ColorPalette []Color `json:"color_palette" validate:"min=1,dive,required"`
}

// Validate checks every range of s. Padding may not exceed half of the
// smaller canvas side.
func (s Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if s.Padding > math.Min(s.Width, s.Height)/2 {
		return fmt.Errorf("%w: padding %v exceeds half of %vx%v", ErrInvalidSettings, s.Padding, s.Width, s.Height)
	}

	return nil
}

// UnmarshalJSON decodes a [dx, dy] pair.
func (p *Point) UnmarshalJSON(b []byte) error {
	var xy []float64
	if err := json.Unmarshal(b, &xy); err != nil {
		return fmt.Errorf("render: offset: %w", err)
	}
	if len(xy) != 2 {
		return fmt.Errorf("render: offset needs 2 numbers, got %d", len(xy))
	}
	p.X, p.Y = xy[0], xy[1]

	return nil
}

// MarshalJSON encodes p as a [dx, dy] pair.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON decodes a color name, an [r, g, b] triple or an
// [r, g, b, opacity] quadruple.
func (c *Color) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*c = Color(name)
		return nil
	}

	var parts []float64
	if err := json.Unmarshal(b, &parts); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidColor, b)
	}
	if len(parts) != 3 && len(parts) != 4 {
		return fmt.Errorf("%w: %d components", ErrInvalidColor, len(parts))
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v := parts[i]
		if v != math.Trunc(v) || v < 0 || v > 255 {
			return fmt.Errorf("%w: component %v", ErrInvalidColor, v)
		}
		rgb[i] = uint8(v)
	}
	if len(parts) == 3 {
		*c = RGB(rgb[0], rgb[1], rgb[2])
		return nil
	}

	opacity := parts[3]
	if opacity < 0 || opacity > 1 {
		return fmt.Errorf("%w: opacity %v", ErrInvalidColor, opacity)
	}
	*c = RGBA(rgb[0], rgb[1], rgb[2], opacity)

	return nil
}
