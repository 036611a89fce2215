package game

import (
	"image"
	"image/color"
	"slices"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/galaxy-visualization/internal/scene"
	"github.com/iburimskiy/galaxy-visualization/internal/ui"
)

// whitePixel is the 1x1 source for vertex-coloured triangles, created on first draw.
var (
	whitePixelOnce sync.Once
	whitePixel     *ebiten.Image
)

func whiteSubImage() *ebiten.Image {
	whitePixelOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whitePixel
}

type drawKind uint8

const (
	drawStar drawKind = iota
	drawTriangle
	drawMarker
)

// drawable is one depth-sorted primitive of a frame. layer is 0 for the
// swirl and 1+j for ring j.
type drawable struct {
	depth float64
	kind  drawKind
	layer int
	index int
}

func (f *frameRenderer) layer(n int) *scene.Layer {
	if n == 0 {
		return &f.frame.Swirl
	}
	return &f.frame.Rings[n-1]
}

// frameRenderer rasterises a scene.Frame painter-style, far to near.
type frameRenderer struct {
	frame     *scene.Frame
	drawables []drawable
	vertices  []ebiten.Vertex
	indices   []uint16
}

func (f *frameRenderer) collect() {
	f.drawables = f.drawables[:0]
	p := f.frame.Projection
	for i, st := range f.frame.Stars {
		f.drawables = append(f.drawables, drawable{depth: p.Depth(st.Pos), kind: drawStar, index: i})
	}
	for i, tri := range f.frame.Planet {
		c := tri.V[0].Add(tri.V[1]).Add(tri.V[2]).Scale(1.0 / 3)
		f.drawables = append(f.drawables, drawable{depth: p.Depth(c), kind: drawTriangle, index: i})
	}
	for l := 0; l <= scene.RingCount; l++ {
		for i, m := range f.layer(l).Markers {
			f.drawables = append(f.drawables, drawable{depth: p.Depth(m.Pos), kind: drawMarker, layer: l, index: i})
		}
	}
	slices.SortStableFunc(f.drawables, func(a, b drawable) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})
}

func (f *frameRenderer) draw(screen *ebiten.Image) {
	f.collect()
	p := f.frame.Projection
	for _, d := range f.drawables {
		if d.kind != drawTriangle {
			f.flushTriangles(screen)
		}
		switch d.kind {
		case drawStar:
			st := f.frame.Stars[d.index]
			x, y, _, ok := p.Project(st.Pos)
			if !ok {
				continue
			}
			vector.DrawFilledRect(screen, float32(x)-0.5, float32(y)-0.5, 1, 1, grayRGBA(st.Gray), false)
		case drawTriangle:
			f.queueTriangle(f.frame.Planet[d.index])
		case drawMarker:
			l := f.layer(d.layer)
			m := l.Markers[d.index]
			x, y, scale, ok := p.Project(m.Pos)
			if !ok {
				continue
			}
			r := scene.MarkerRadius * scale
			vector.StrokeCircle(screen, float32(x), float32(y), float32(r), float32(l.StrokeWeight), toRGBA(m.Color), true)
		}
	}
	f.flushTriangles(screen)
}

func (f *frameRenderer) queueTriangle(tri scene.Triangle) {
	p := f.frame.Projection
	var vs [3]ebiten.Vertex
	for k := 0; k < 3; k++ {
		x, y, _, ok := p.Project(tri.V[k])
		if !ok {
			return
		}
		r, g, b := vertexColor(tri.C[k])
		vs[k] = ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: 1,
		}
	}
	base := uint16(len(f.vertices))
	f.vertices = append(f.vertices, vs[:]...)
	f.indices = append(f.indices, base, base+1, base+2)
}

func (f *frameRenderer) flushTriangles(screen *ebiten.Image) {
	if len(f.indices) == 0 {
		return
	}
	screen.DrawTriangles(f.vertices, f.indices, whiteSubImage(), &ebiten.DrawTrianglesOptions{})
	f.vertices = f.vertices[:0]
	f.indices = f.indices[:0]
}

func fillRect(dst *ebiten.Image, r ui.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(dst *ebiten.Image, r ui.Rect, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, clr, false)
}
