package ui

import "image/color"

var _ Drawable = (*ColorDrawable)(nil)

// ColorDrawable fills its bounds with a single color.
type ColorDrawable struct {
	DrawableBase

	color  color.NRGBA
	alpha  uint8
	filter ColorFilter
	paint  Paint
}

func NewColorDrawable(c color.Color) *ColorDrawable {
	return &ColorDrawable{
		color: color.NRGBAModel.Convert(c).(color.NRGBA),
		alpha: 0xff,
		paint: NewPaint(false),
	}
}

func (d *ColorDrawable) Color() color.NRGBA {
	return d.color
}

func (d *ColorDrawable) SetColor(c color.Color) {
	d.color = color.NRGBAModel.Convert(c).(color.NRGBA)
	d.InvalidateSelf()
}

func (d *ColorDrawable) Draw(c Canvas) {
	col := d.color
	if d.filter != nil {
		col = d.filter.Filter(col)
	}
	col.A = uint8(uint16(col.A) * uint16(d.alpha) / 0xff)
	d.paint.SetColor(col)
	c.DrawRect(d.Bounds(), &d.paint)
}

func (d *ColorDrawable) Opacity() Opacity {
	a := uint16(d.color.A) * uint16(d.alpha) / 0xff
	switch a {
	case 0xff:
		return OpacityOpaque
	case 0:
		return OpacityTransparent
	}
	return OpacityTranslucent
}

func (d *ColorDrawable) SetAlpha(alpha uint8) {
	if d.alpha != alpha {
		d.alpha = alpha
		d.InvalidateSelf()
	}
}

func (d *ColorDrawable) SetColorFilter(f ColorFilter) {
	d.filter = f
	d.InvalidateSelf()
}

// Tint is a ColorFilter that replaces color channels and keeps alpha.
type Tint struct {
	Color color.NRGBA
}

func (t Tint) Filter(c color.NRGBA) color.NRGBA {
	return color.NRGBA{R: t.Color.R, G: t.Color.G, B: t.Color.B, A: c.A}
}
