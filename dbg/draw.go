package dbg

import (
	"fmt"
	"image"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/brainwall/checker"
	"github.com/osuushi/brainwall/geom"
	"github.com/osuushi/brainwall/problem"
	"golang.org/x/image/font/basicfont"
)

// Padding around the picture, in pixels, so that vertices outside the hole
// and labels at the edges stay visible
const drawPadding = 40

type DrawOptions struct {
	// Pixels per unit. Problems range from a few dozen units across to a few
	// hundred, so the default of 4 is only a starting point.
	Scale float64
	// Label vertices with their index.
	Labels bool
}

// Draw renders the hole, the bonus offers, and the pose. Edges are green when
// they are fine, orange when only their length is wrong, and red when they
// leave the hole. With no pose, the figure is drawn where the problem puts it,
// in grey. The verdict may be nil, in which case the pose is drawn in grey
// too.
func Draw(c *checker.Checker, pose *problem.Pose, verdict *checker.Verdict, opts DrawOptions) image.Image {
	p := c.Problem()
	scale := opts.Scale
	if scale <= 0 {
		scale = 4
	}

	edges := c.Edges()
	if pose == nil {
		pose = problem.OriginalPose(p)
		edges = p.Figure.Edges
		verdict = nil
	}

	points := append([]geom.Point{}, p.Hole...)
	points = append(points, pose.Vertices...)
	for _, offer := range p.Bonuses {
		points = append(points, offer.Position)
	}
	min, max, _ := geom.BoundingBox(points)

	width := int(scale*float64(max.X-min.X)) + drawPadding*2
	height := int(scale*float64(max.Y-min.Y)) + drawPadding*2
	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()
	dc.SetFontFace(basicfont.Face7x13)

	// The y axis already points down, so unlike a math plot there is no flip
	dc.Translate(drawPadding, drawPadding)
	dc.Scale(scale, scale)
	dc.Translate(-float64(min.X), -float64(min.Y))

	// Hole
	dc.MoveTo(float64(p.Hole[0].X), float64(p.Hole[0].Y))
	for _, pt := range p.Hole[1:] {
		dc.LineTo(float64(pt.X), float64(pt.Y))
	}
	dc.ClosePath()
	dc.SetRGB(0.15, 0.15, 0.3)
	dc.FillPreserve()
	dc.SetRGB(0.5, 0.5, 1)
	dc.SetLineWidth(2)
	dc.Stroke()

	// Bonus offers
	for i, offer := range p.Bonuses {
		dc.DrawCircle(float64(offer.Position.X), float64(offer.Position.Y), 6/scale)
		if verdict != nil && verdict.Unlocked[i] {
			dc.SetRGB(1, 0.85, 0)
			dc.Fill()
		} else {
			dc.SetRGB(0.6, 0.6, 0.6)
			dc.Stroke()
		}
	}

	// Figure
	dc.SetLineWidth(3)
	for i, e := range edges {
		a, b := pose.Vertices[e.U], pose.Vertices[e.V]
		dc.DrawLine(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
		if verdict == nil {
			dc.SetRGB(0.7, 0.7, 0.7)
		} else {
			setStatusColor(dc, verdict.EdgeStatuses[i])
		}
		dc.Stroke()
	}

	for i, v := range pose.Vertices {
		dc.DrawCircle(float64(v.X), float64(v.Y), 3/scale)
		if verdict != nil && verdict.ExcusedVertex == i {
			dc.SetRGB(1, 0, 1)
		} else {
			dc.SetRGB(1, 1, 1)
		}
		dc.Fill()

		if opts.Labels {
			// Text is drawn in pixel space so that it is not scaled
			x, y := dc.TransformPoint(float64(v.X), float64(v.Y))
			dc.Push()
			dc.Identity()
			dc.DrawStringAnchored(fmt.Sprint(i), x+4, y-4, 0, 0)
			dc.Pop()
		}
	}

	return dc.Image()
}

func setStatusColor(dc *gg.Context, s checker.EdgeStatus) {
	switch {
	case !s.FitsInHole:
		dc.SetRGB(1, 0.1, 0.1)
	case !s.LengthOK():
		dc.SetRGB(1, 0.6, 0)
	default:
		dc.SetRGB(0.1, 0.9, 0.3)
	}
}

// SavePNG writes the picture to a file.
func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

// Show prints a PNG file to the terminal (iTerm only).
func Show(path string) {
	imgcat.CatFile(path, os.Stdout)
}
