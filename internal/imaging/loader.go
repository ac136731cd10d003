package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// ErrUnreadableImage reports input that cannot be decoded as an image.
// It is the only hard failure the extraction pipeline surfaces; callers
// can test for it with errors.Is.
var ErrUnreadableImage = errors.New("unreadable image")

// Open reads and decodes an image file into a grayscale intensity image.
//
// Supported formats are PNG, JPEG, and GIF. Any failure to open or decode
// the file wraps ErrUnreadableImage.
func Open(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode decodes an image from r and converts it to grayscale.
//
// Returns an error wrapping ErrUnreadableImage if the stream is not a
// valid PNG, JPEG, or GIF image.
func Decode(r io.Reader) (*image.Gray, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}
	return ToGray(img), nil
}

// DecodeBytes decodes an in-memory image buffer and converts it to
// grayscale. This is the entry point for callers that receive uploads as
// byte slices rather than files.
func DecodeBytes(data []byte) (*image.Gray, error) {
	return Decode(bytes.NewReader(data))
}

// ToGray converts any image to a single-channel intensity image.
//
// Color images are converted using standard luminance weights. If the
// input is already *image.Gray it is returned unchanged.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	flat := imaging.Grayscale(img)
	out := image.NewGray(flat.Bounds())
	draw.Draw(out, out.Bounds(), flat, flat.Bounds().Min, draw.Src)
	return out
}
