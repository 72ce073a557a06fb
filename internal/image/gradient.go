package imagepkg

import (
	"image"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Vec2 is a 2D vector used for the gradient direction.
type Vec2 struct{ X, Y float64 }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Magnitude() float64 { return math.Hypot(v.X, v.Y) }

// Vec3 holds an RGB color with float components in [0, 255].
type Vec3 struct{ X, Y, Z float64 }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Rainbow maps an angle to a color using three sine waves a third of a turn apart.
// It is periodic in 2π.
func Rainbow(angle float64) Vec3 {
	r := math.Sin(angle)*0.5 + 0.5
	g := math.Sin(angle+2*math.Pi/3)*0.5 + 0.5
	b := math.Sin(angle+4*math.Pi/3)*0.5 + 0.5
	return Vec3{r, g, b}.Scale(255)
}

// gradientBand is the number of rows handed to one worker.
const gradientBand = 64

// Gradient fills a width×height image that blends from start at the top-left
// corner to end along the diagonal. Brightness is the projection of the pixel
// position onto the normalized diagonal and is not clamped; for the canvas's own
// diagonal it stays within [0, 1).
func Gradient(start, end Vec3, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	diagonal := Vec2{float64(width), float64(height)}
	magnitude := diagonal.Magnitude()
	if magnitude == 0 {
		return img
	}
	normal := diagonal.Scale(1 / magnitude)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for top := 0; top < height; top += gradientBand {
		bottom := min(top+gradientBand, height)
		g.Go(func() error {
			for y := top; y < bottom; y++ {
				row := img.Pix[y*img.Stride:]
				for x := 0; x < width; x++ {
					brightness := Vec2{float64(x), float64(y)}.Scale(1 / magnitude).Dot(normal)
					c := end.Scale(brightness).Add(start.Scale(1 - brightness))
					i := x * 4
					row[i+0] = uint8(int(c.X))
					row[i+1] = uint8(int(c.Y))
					row[i+2] = uint8(int(c.Z))
					row[i+3] = 0xff
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	return img
}
