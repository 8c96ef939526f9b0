// Package imageproc prepares an uploaded photo for the vision call: decode,
// downscale, re-encode as JPEG under a size ceiling.
package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"
)

var (
	ErrTooLarge  = errors.New("image exceeds size limit")
	ErrBadImage  = errors.New("image cannot be decoded")
	ErrEmptyFile = errors.New("image is empty")
)

type Encoder struct {
	MaxInputBytes   int // reject above this
	MaxDim          int // longest side after downscale
	MaxEncodedBytes int // JPEG re-encode target
}

func NewEncoder() *Encoder {
	return &Encoder{
		MaxInputBytes:   10 * 1024 * 1024,
		MaxDim:          800,
		MaxEncodedBytes: 800 * 1024,
	}
}

// Encode validates and converts the upload to a JPEG payload no larger than
// MaxEncodedBytes, scaled down to MaxDim on the longest side. Quality steps
// down from 85 and never below 30.
func (e *Encoder) Encode(data []byte) ([]byte, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyFile
	}
	if len(data) > e.MaxInputBytes {
		return nil, "", ErrTooLarge
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrBadImage, err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if longest := max(w, h); longest > e.MaxDim {
		scale := float64(e.MaxDim) / float64(longest)
		nw := max(int(float64(w)*scale+0.5), 1)
		nh := max(int(float64(h)*scale+0.5), 1)
		img = scaleDownNN(img, nw, nh)
	}

	for quality := 85; ; quality -= 10 {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, "", err
		}
		if buf.Len() <= e.MaxEncodedBytes || quality <= 30 {
			return buf.Bytes(), "image/jpeg", nil
		}
	}
}

func scaleDownNN(src image.Image, newW, newH int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	sb := src.Bounds()
	srcW := sb.Dx()
	srcH := sb.Dy()
	for y := 0; y < newH; y++ {
		sy := sb.Min.Y + (y*srcH)/newH
		for x := 0; x < newW; x++ {
			sx := sb.Min.X + (x*srcW)/newW
			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst
}
