package imaging

import (
	"image"
	"image/color"
	"testing"
)

// newUniformGray creates a gray image filled with one intensity
func newUniformGray(width, height int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestPreprocess_OutputIsBinary(t *testing.T) {
	src := newUniformGray(60, 40, 200)
	// A dark block so both classes appear in the input.
	for y := 10; y < 30; y++ {
		for x := 10; x < 50; x++ {
			src.SetGray(x, y, color.Gray{Y: 0})
		}
	}

	mask := Preprocess(src)

	if mask.Bounds().Dx() != 60 || mask.Bounds().Dy() != 40 {
		t.Errorf("mask dimensions %dx%d, want 60x40", mask.Bounds().Dx(), mask.Bounds().Dy())
	}
	for i, v := range mask.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("mask pixel %d has intensity %d, want 0 or 255", i, v)
		}
	}
}

func TestPreprocess_BlankImageStaysBlank(t *testing.T) {
	mask := Preprocess(newUniformGray(80, 80, 255))

	for i, v := range mask.Pix {
		if v != 255 {
			t.Fatalf("blank input produced road pixel at index %d (intensity %d)", i, v)
		}
	}
}

func TestPreprocess_Deterministic(t *testing.T) {
	src := newUniformGray(50, 50, 230)
	for x := 5; x < 45; x++ {
		src.SetGray(x, 25, color.Gray{Y: 0})
	}

	a := Preprocess(src)
	b := Preprocess(src)

	if len(a.Pix) != len(b.Pix) {
		t.Fatalf("runs produced different sizes: %d vs %d", len(a.Pix), len(b.Pix))
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("runs differ at pixel %d: %d vs %d", i, a.Pix[i], b.Pix[i])
		}
	}
}
