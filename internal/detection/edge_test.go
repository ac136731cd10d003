package detection

import (
	"image"
	"image/color"
	"testing"
)

// createMask creates a white gray image
func createMask(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

// fillRect darkens the inclusive rectangle [x1,x2]x[y1,y2]
func fillRect(img *image.Gray, x1, y1, x2, y2 int) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}
}

func countEdges(edges [][]bool) int {
	n := 0
	for _, row := range edges {
		for _, e := range row {
			if e {
				n++
			}
		}
	}
	return n
}

func TestCannyEdges_BlankImage(t *testing.T) {
	edges := CannyEdges(createMask(100, 100), 50, 150)

	if n := countEdges(edges); n != 0 {
		t.Errorf("blank image produced %d edge pixels, want 0", n)
	}
}

func TestCannyEdges_Dimensions(t *testing.T) {
	edges := CannyEdges(createMask(64, 48), 50, 150)

	if len(edges) != 48 {
		t.Fatalf("edge mask height %d, want 48", len(edges))
	}
	if len(edges[0]) != 64 {
		t.Fatalf("edge mask width %d, want 64", len(edges[0]))
	}
}

func TestCannyEdges_HorizontalBar(t *testing.T) {
	img := createMask(100, 100)
	fillRect(img, 0, 40, 99, 60)

	edges := CannyEdges(img, 50, 150)

	topBand, bottomBand, farField := 0, 0, 0
	for y, row := range edges {
		for _, e := range row {
			if !e {
				continue
			}
			switch {
			case y >= 35 && y <= 45:
				topBand++
			case y >= 55 && y <= 65:
				bottomBand++
			case y < 30:
				farField++
			}
		}
	}

	if topBand == 0 {
		t.Error("no edges near the top boundary of the bar")
	}
	if bottomBand == 0 {
		t.Error("no edges near the bottom boundary of the bar")
	}
	if farField != 0 {
		t.Errorf("%d edge pixels far from any intensity transition", farField)
	}
}

func TestCannyEdges_Deterministic(t *testing.T) {
	img := createMask(80, 80)
	fillRect(img, 10, 30, 70, 50)

	a := CannyEdges(img, 50, 150)
	b := CannyEdges(img, 50, 150)

	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				t.Fatalf("edge masks differ at (%d,%d)", x, y)
			}
		}
	}
}
