// Package render draws triangulations into images for quick visual
// inspection.
package render

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/viam-labs/cdt/triangulate"
)

const (
	defaultSize   = 800
	defaultMargin = 24
)

// Style controls the output raster.
type Style struct {
	// Width and Height are the canvas size in pixels. Non-positive values
	// fall back to 800.
	Width  int `json:"width"`
	Height int `json:"height"`
	// Margin is the border kept clear around the drawing, in pixels.
	// Non-positive falls back to 24.
	Margin float64 `json:"margin"`
}

func (s Style) withDefaults() Style {
	if s.Width <= 0 {
		s.Width = defaultSize
	}
	if s.Height <= 0 {
		s.Height = defaultSize
	}
	if s.Margin <= 0 {
		s.Margin = defaultMargin
	}
	return s
}

// Image draws the interior triangles of mesh: faces pale blue, shared edges
// thin, constrained boundary edges heavy. A nil style means all defaults.
func Image(mesh *triangulate.Mesh, style *Style) (image.Image, error) {
	dc, err := draw(mesh, style)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG renders mesh like Image and writes the result to path.
func SavePNG(path string, mesh *triangulate.Mesh, style *Style) error {
	dc, err := draw(mesh, style)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func draw(mesh *triangulate.Mesh, style *Style) (*gg.Context, error) {
	var st Style
	if style != nil {
		st = *style
	}
	st = st.withDefaults()

	tris := mesh.Triangles()
	if len(tris) == 0 {
		return nil, errors.New("mesh has no interior triangles to draw")
	}

	min, max := bounds(tris)
	scale := (float64(st.Width) - 2*st.Margin) / (max.X - min.X)
	if sy := (float64(st.Height) - 2*st.Margin) / (max.Y - min.Y); sy < scale {
		scale = sy
	}
	// canvas y grows downward, mesh y upward
	project := func(p r2.Point) (float64, float64) {
		return st.Margin + (p.X-min.X)*scale, float64(st.Height) - st.Margin - (p.Y-min.Y)*scale
	}

	dc := gg.NewContext(st.Width, st.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for _, t := range tris {
		pts := t.Points()
		x0, y0 := project(pts[0])
		x1, y1 := project(pts[1])
		x2, y2 := project(pts[2])
		dc.MoveTo(x0, y0)
		dc.LineTo(x1, y1)
		dc.LineTo(x2, y2)
		dc.ClosePath()
		dc.SetRGBA(0.35, 0.6, 0.9, 0.35)
		dc.Fill()
	}

	for _, t := range tris {
		pts := t.Points()
		for i := 0; i < 3; i++ {
			a, b := pts[(i+1)%3], pts[(i+2)%3]
			ax, ay := project(a)
			bx, by := project(b)
			dc.DrawLine(ax, ay, bx, by)
			if t.Constrained(i) {
				dc.SetRGB(0.1, 0.1, 0.15)
				dc.SetLineWidth(2.5)
			} else {
				dc.SetRGB(0.45, 0.45, 0.5)
				dc.SetLineWidth(1)
			}
			dc.Stroke()
		}
	}
	return dc, nil
}

func bounds(tris []*triangulate.Triangle) (min, max r2.Point) {
	min = tris[0].Points()[0]
	max = min
	for _, t := range tris {
		for _, p := range t.Points() {
			if p.X < min.X {
				min.X = p.X
			}
			if p.Y < min.Y {
				min.Y = p.Y
			}
			if p.X > max.X {
				max.X = p.X
			}
			if p.Y > max.Y {
				max.Y = p.Y
			}
		}
	}
	return min, max
}
