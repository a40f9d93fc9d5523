package preview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/animation"
	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/system"
)

// Curves are rendered at 2x and downscaled for cheap anti-aliasing.
const supersample = 2

var (
	plotBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	plotGridLine   = color.RGBA{R: 40, G: 40, B: 48, A: 255}
)

// PlotTrack renders one track's value curve over [0, duration] into an
// RGBA image of the requested size.
func PlotTrack(store *animation.Store, object, property string, duration float64, width, height int) (*image.RGBA, error) {
	if _, ok := store.ValueAt(object, property, 0); !ok {
		return nil, fmt.Errorf("track %s.%s has no value to plot", object, property)
	}

	curveColour, _ := colorful.Hex("#00d4ff")
	return plotCurves(duration, width, height, []curve{{
		colour: curveColour,
		sample: func(t float64) (float64, bool) {
			return store.ValueAt(object, property, t)
		},
	}})
}

// PlotObject renders every enabled property of an object, one colour per
// curve, spread around the hue circle.
func PlotObject(store *animation.Store, object string, duration float64, width, height int) (*image.RGBA, error) {
	props := store.Properties(object)

	var curves []curve
	for _, prop := range props {
		if _, ok := store.ValueAt(object, prop, 0); !ok {
			continue
		}
		curves = append(curves, curve{
			colour: colorful.Hsv(float64(len(curves))*137.5, 0.65, 0.95),
			sample: func(t float64) (float64, bool) {
				return store.ValueAt(object, prop, t)
			},
		})
	}

	if len(curves) == 0 {
		return nil, fmt.Errorf("object %s has no enabled tracks to plot", object)
	}
	return plotCurves(duration, width, height, curves)
}

type curve struct {
	colour colorful.Color
	sample func(t float64) (float64, bool)
}

func plotCurves(duration float64, width, height int, curves []curve) (*image.RGBA, error) {
	if duration <= 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid plot dimensions %dx%d over %.2fs", width, height, duration)
	}

	bigW, bigH := width*supersample, height*supersample
	big := system.GetImage(image.Rect(0, 0, bigW, bigH))
	defer system.PutImage(big)

	for y := 0; y < bigH; y++ {
		for x := 0; x < bigW; x++ {
			big.SetRGBA(x, y, plotBackground)
		}
	}

	// One grid line per second
	for sec := 0.0; sec <= duration; sec++ {
		x := int(sec / duration * float64(bigW-1))
		for y := 0; y < bigH; y++ {
			big.SetRGBA(x, y, plotGridLine)
		}
	}

	// Value range across all curves, padded when flat
	lo, hi := sampleRange(duration, bigW, curves)

	for _, c := range curves {
		rgba := colourToRGBA(c.colour)
		prevY := -1
		for x := 0; x < bigW; x++ {
			t := float64(x) / float64(bigW-1) * duration
			v, ok := c.sample(t)
			if !ok {
				prevY = -1
				continue
			}
			y := valueToY(v, lo, hi, bigH)
			if prevY < 0 {
				prevY = y
			}
			drawVerticalRun(big, x, prevY, y, rgba)
			prevY = y
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), xdraw.Src, nil)
	return out, nil
}

func sampleRange(duration float64, columns int, curves []curve) (float64, float64) {
	lo, hi := 0.0, 0.0
	seen := false
	for _, c := range curves {
		for x := 0; x < columns; x++ {
			t := float64(x) / float64(columns-1) * duration
			v, ok := c.sample(t)
			if !ok {
				continue
			}
			if !seen {
				lo, hi = v, v
				seen = true
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if hi-lo < 1e-9 {
		lo -= 1
		hi += 1
	}
	return lo, hi
}

func valueToY(v, lo, hi float64, height int) int {
	// Top margin of 5% on each side
	u := (v - lo) / (hi - lo)
	y := int((1-u)*0.9*float64(height-1) + 0.05*float64(height-1))
	if y < 0 {
		y = 0
	}
	if y >= height {
		y = height - 1
	}
	return y
}

func drawVerticalRun(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x, y, c)
	}
}

func colourToRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
