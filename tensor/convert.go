package tensor

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// FromImage converts an image to an Array.
//
// Grayscale images become single-channel arrays. Fully opaque images become
// 3-channel RGB arrays; images with any transparency keep a 4th alpha
// channel. Values are stored as float64 in the 0-255 range.
func FromImage(img image.Image) *Array {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if g, ok := img.(*image.Gray); ok {
		a, _ := New(height, width, 1)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				a.data[y*width+x] = float64(g.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
		return a
	}

	channels := 3
	if !isOpaque(img) {
		channels = 4
	}
	a, _ := New(height, width, channels)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, al := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*width + x) * channels
			a.data[i+0] = float64(r >> 8)
			a.data[i+1] = float64(g >> 8)
			a.data[i+2] = float64(b >> 8)
			if channels == 4 {
				a.data[i+3] = float64(al >> 8)
			}
		}
	}
	return a
}

// ToImage converts the array back to an image, clamping values to 0-255.
// Single-channel arrays become *image.Gray, 3-channel arrays *image.RGBA
// with full alpha, and 4-channel arrays *image.NRGBA. Other channel counts
// use the first three channels as RGB.
func (a *Array) ToImage() image.Image {
	switch a.channels {
	case 1:
		img := image.NewGray(image.Rect(0, 0, a.width, a.height))
		for y := 0; y < a.height; y++ {
			for x := 0; x < a.width; x++ {
				img.SetGray(x, y, color.Gray{Y: clamp255(a.data[y*a.width+x])})
			}
		}
		return img
	case 4:
		img := image.NewNRGBA(image.Rect(0, 0, a.width, a.height))
		for y := 0; y < a.height; y++ {
			for x := 0; x < a.width; x++ {
				i := (y*a.width + x) * 4
				img.SetNRGBA(x, y, color.NRGBA{
					R: clamp255(a.data[i+0]),
					G: clamp255(a.data[i+1]),
					B: clamp255(a.data[i+2]),
					A: clamp255(a.data[i+3]),
				})
			}
		}
		return img
	default:
		img := image.NewRGBA(image.Rect(0, 0, a.width, a.height))
		for y := 0; y < a.height; y++ {
			for x := 0; x < a.width; x++ {
				i := (y*a.width + x) * a.channels
				var r, g, b uint8
				r = clamp255(a.data[i])
				if a.channels >= 3 {
					g = clamp255(a.data[i+1])
					b = clamp255(a.data[i+2])
				} else {
					g, b = r, r
				}
				img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
			}
		}
		return img
	}
}

// Gray returns a single-channel luma copy of the array using the
// Rec. 601 weights. Single-channel arrays are cloned unchanged.
func (a *Array) Gray() *Array {
	if a.channels == 1 {
		return a.Clone()
	}
	out, _ := New(a.height, a.width, 1)
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			i := (y*a.width + x) * a.channels
			out.data[y*a.width+x] = 0.299*a.data[i] + 0.587*a.data[i+1] + 0.114*a.data[i+2]
		}
	}
	return out
}

// Resize returns a copy of the array scaled to the given dimensions using
// Catmull-Rom resampling. The conversion round-trips through 8-bit images,
// so sub-integer precision is not preserved; intended for normalizing input
// sizes before augmentation, not for in-pipeline math.
func (a *Array) Resize(height, width int) (*Array, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrInvalidDimensions
	}
	src := a.ToImage()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	if a.channels == 1 {
		return FromImage(dst).Gray(), nil
	}
	return FromImage(dst), nil
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

func clamp255(v float64) uint8 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
