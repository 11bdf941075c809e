package ui

import "image/color"

// Style selects whether shapes are filled or outlined.
type Style int

const (
	Fill Style = iota
	Stroke
)

// Paint holds the color and style used to draw shapes.
type Paint struct {
	Style       Style
	AntiAlias   bool
	StrokeWidth float32

	color color.NRGBA
}

// NewPaint returns an opaque black fill paint.
func NewPaint(antiAlias bool) Paint {
	return Paint{
		Style:       Fill,
		AntiAlias:   antiAlias,
		StrokeWidth: 1,
		color:       color.NRGBA{A: 0xff},
	}
}

// SetColor replaces the color, including its alpha.
func (p *Paint) SetColor(c color.Color) {
	p.color = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Color returns the paint color.
func (p *Paint) Color() color.NRGBA {
	return p.color
}

// SetAlpha replaces only the alpha channel.
func (p *Paint) SetAlpha(alpha uint8) {
	p.color.A = alpha
}

func (p *Paint) Alpha() uint8 {
	return p.color.A
}
