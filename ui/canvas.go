package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is a drawing surface in view-local coordinates.
type Canvas interface {
	DrawCircle(cx, cy, radius float32, p *Paint)
	DrawRect(r image.Rectangle, p *Paint)
}

// ImageCanvas draws onto an ebiten image, clipped to a view's rectangle.
type ImageCanvas struct {
	dst     *ebiten.Image
	offsetX float32
	offsetY float32
}

// NewImageCanvas returns a canvas whose origin is clip.Min on screen. Nothing
// is drawn outside clip.
func NewImageCanvas(screen *ebiten.Image, clip image.Rectangle) *ImageCanvas {
	return &ImageCanvas{
		dst:     screen.SubImage(clip).(*ebiten.Image),
		offsetX: float32(clip.Min.X),
		offsetY: float32(clip.Min.Y),
	}
}

func (c *ImageCanvas) DrawCircle(cx, cy, radius float32, p *Paint) {
	if radius <= 0 || p.Alpha() == 0 {
		return
	}
	x, y := cx+c.offsetX, cy+c.offsetY
	if p.Style == Stroke {
		vector.StrokeCircle(c.dst, x, y, radius, p.StrokeWidth, p.Color(), p.AntiAlias)
		return
	}
	vector.DrawFilledCircle(c.dst, x, y, radius, p.Color(), p.AntiAlias)
}

func (c *ImageCanvas) DrawRect(r image.Rectangle, p *Paint) {
	if r.Empty() || p.Alpha() == 0 {
		return
	}
	x := float32(r.Min.X) + c.offsetX
	y := float32(r.Min.Y) + c.offsetY
	w, h := float32(r.Dx()), float32(r.Dy())
	if p.Style == Stroke {
		vector.StrokeRect(c.dst, x, y, w, h, p.StrokeWidth, p.Color(), p.AntiAlias)
		return
	}
	vector.DrawFilledRect(c.dst, x, y, w, h, p.Color(), p.AntiAlias)
}
