// Package render draws a tree's node boundaries and entry density as
// raster images, adapted from the teacher's page-rasterization pipeline
// (wudi-pdfkit), which draws onto image.RGBA via golang.org/x/image/draw
// rather than hand-rolled pixel loops. PNG encoding goes through the
// standard library's image/png, since the engine has no need for a
// third-party encoder beyond what draw.Draw already buys it.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/SupremeHuaji/Quadtree/geom"
)

// NodeBoundary is the minimal shape render needs from a quadtree node: its
// boundary rectangle and whether it is a leaf. Callers project their
// tree's internal nodes into this shape (quadtree.DebugNodes does so).
type NodeBoundary struct {
	Rect   geom.Rect
	IsLeaf bool
}

var (
	leafColor     = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	internalColor = color.RGBA{R: 0x90, G: 0xa4, B: 0xae, A: 0xff}
)

// Boundaries rasters every node boundary in nodes onto a width x height
// canvas scaled from the given world rect, leaves in green and internal
// nodes in blue-grey.
func Boundaries(world geom.Rect, nodes []NodeBoundary, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	sx := float32(width) / world.Width
	sy := float32(height) / world.Height

	for _, n := range nodes {
		c := internalColor
		if n.IsLeaf {
			c = leafColor
		}
		strokeRect(img, project(n.Rect, world, sx, sy), c)
	}
	return img
}

// Heatmap rasters a width x height canvas where each cell's intensity is
// proportional to the number of points falling inside it, via a simple
// linear white-to-red ramp (empty cells are white, the fullest cell is pure
// red). counts must be laid out row-major with density
// grid dimensions gridW x gridH.
func Heatmap(counts []int, gridW, gridH, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	cellW := float64(width) / float64(gridW)
	cellH := float64(height) / float64(gridH)

	for gy := 0; gy < gridH; gy++ {
		for gx := 0; gx < gridW; gx++ {
			count := counts[gy*gridW+gx]
			intensity := uint8(0)
			if maxCount > 0 {
				intensity = uint8(255 * count / maxCount)
			}
			cell := color.RGBA{R: 255, G: 255 - intensity, B: 255 - intensity, A: 255}
			dst := image.Rect(
				int(float64(gx)*cellW), int(float64(gy)*cellH),
				int(float64(gx+1)*cellW), int(float64(gy+1)*cellH),
			)
			draw.Draw(img, dst, image.NewUniform(cell), image.Point{}, draw.Src)
		}
	}
	return img
}

// EncodePNG writes img to w as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func project(r geom.Rect, world geom.Rect, sx, sy float32) image.Rectangle {
	x0 := int((r.X - world.X) * sx)
	y0 := int((r.Y - world.Y) * sy)
	x1 := int((r.X + r.Width - world.X) * sx)
	y1 := int((r.Y + r.Height - world.Y) * sy)
	return image.Rect(x0, y0, x1, y1)
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	b := img.Bounds()
	r = r.Intersect(b)
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}
