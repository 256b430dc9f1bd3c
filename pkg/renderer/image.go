package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/user/spacer/pkg/core"
)

// Image is a width*height*3 byte pixel buffer, row-major, gamma-encoded
// 8-bit RGB. It is allocated once and written exactly once per pixel per
// render call.
type Image struct {
	width  int
	height int
	stride int
	pixels []byte
}

// NewImage allocates a black image of the given size
func NewImage(width, height int) *Image {
	stride := width * 3
	return &Image{
		width:  width,
		height: height,
		stride: stride,
		pixels: make([]byte, stride*height),
	}
}

// NewImageFromAspectRatio allocates an image with the given width and a
// height derived from the aspect ratio. The ratio must be finite and positive.
func NewImageFromAspectRatio(width int, aspectRatio float64) *Image {
	if !(aspectRatio > 0) || math.IsInf(aspectRatio, 1) {
		panic(fmt.Sprintf("invalid aspect ratio %v", aspectRatio))
	}
	return NewImage(width, int(float64(width)/aspectRatio))
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

// AspectRatio returns width over height
func (img *Image) AspectRatio() float64 {
	return float64(img.width) / float64(img.height)
}

// Pixels returns the backing byte slice
func (img *Image) Pixels() []byte { return img.pixels }

// encodePixel gamma-encodes a linear color and quantizes it to 3 bytes.
// Gamma 2 encoding is the square root of the clamped linear value.
func encodePixel(pixels []byte, index int, c core.Vec3) {
	gamma := c.Clamp(0, 1)
	pixels[index] = uint8(255 * math.Sqrt(gamma.X))
	pixels[index+1] = uint8(255 * math.Sqrt(gamma.Y))
	pixels[index+2] = uint8(255 * math.Sqrt(gamma.Z))
}

// PutPixel writes a linear color into pixel (x, y)
func (img *Image) PutPixel(x, y int, c core.Vec3) {
	encodePixel(img.pixels, y*img.stride+x*3, c)
}

// SplitN partitions the image into up to n contiguous row stripes that are
// pairwise disjoint and together cover every row. Rows spread as evenly as
// possible: the first height%n stripes get one extra row. Each stripe owns
// its sub-slice of the backing buffer, so stripes can be written from
// different goroutines without locking.
func (img *Image) SplitN(n int) []*Stripe {
	stripes := make([]*Stripe, 0, n)
	remaining := img.pixels

	rowsPerStripe := img.height / n
	remainder := img.height % n
	yOffset := 0

	for i := 0; i < n; i++ {
		stripeHeight := rowsPerStripe
		if remainder > 0 {
			stripeHeight++
			remainder--
		}
		if stripeHeight == 0 {
			break
		}

		byteCount := stripeHeight * img.stride
		stripes = append(stripes, &Stripe{
			width:   img.width,
			height:  stripeHeight,
			stride:  img.stride,
			yOffset: yOffset,
			pixels:  remaining[:byteCount:byteCount],
		})

		remaining = remaining[byteCount:]
		yOffset += stripeHeight
	}

	return stripes
}

// WritePPM encodes the image as binary PPM (P6): magic token, width and
// height, max channel value, then raw gamma-encoded bytes
func (img *Image) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", img.width, img.height); err != nil {
		return err
	}
	_, err := w.Write(img.pixels)
	return err
}

// SaveAsPPM writes the image to a PPM file
func (img *Image) SaveAsPPM(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := img.WritePPM(file); err != nil {
		return err
	}
	return file.Close()
}

// ToRGBA copies the buffer into a standard library RGBA image
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			index := y*img.stride + x*3
			rgba.SetRGBA(x, y, color.RGBA{
				R: img.pixels[index],
				G: img.pixels[index+1],
				B: img.pixels[index+2],
				A: 255,
			})
		}
	}
	return rgba
}

// SavePNG writes the image to a PNG file
func (img *Image) SavePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := png.Encode(file, img.ToRGBA()); err != nil {
		return err
	}
	return file.Close()
}

// Stripe is a contiguous row range of an image owned exclusively by one
// worker for the duration of a render call. Pixel coordinates are local:
// y = 0 is the stripe's first row, YOffset rows below the image top.
type Stripe struct {
	width   int
	height  int
	stride  int
	yOffset int
	pixels  []byte
}

// Width returns the stripe width in pixels
func (s *Stripe) Width() int { return s.width }

// Height returns the number of rows in the stripe
func (s *Stripe) Height() int { return s.height }

// YOffset returns the stripe's first row in image coordinates
func (s *Stripe) YOffset() int { return s.yOffset }

// PutPixel writes a linear color into stripe-local pixel (x, y)
func (s *Stripe) PutPixel(x, y int, c core.Vec3) {
	encodePixel(s.pixels, y*s.stride+x*3, c)
}
