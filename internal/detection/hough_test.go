package detection

import (
	"math"
	"testing"
)

// newEdgeMask creates an empty edge mask
func newEdgeMask(width, height int) [][]bool {
	edges := make([][]bool, height)
	for y := range edges {
		edges[y] = make([]bool, width)
	}
	return edges
}

func TestHoughSegments_HorizontalLine(t *testing.T) {
	edges := newEdgeMask(120, 120)
	for x := 10; x <= 90; x++ {
		edges[50][x] = true
	}

	candidates := HoughSegments(edges, DefaultHoughParams())
	if len(candidates) == 0 {
		t.Fatal("no candidates for an 81-pixel horizontal line")
	}

	c := candidates[0]
	if c.Start.Y != 50 || c.End.Y != 50 {
		t.Errorf("endpoints (%v, %v) not on y=50", c.Start, c.End)
	}
	if c.Length < 75 {
		t.Errorf("length %.1f, want close to 80", c.Length)
	}

	loX := math.Min(c.Start.X, c.End.X)
	hiX := math.Max(c.Start.X, c.End.X)
	if loX > 15 || hiX < 85 {
		t.Errorf("candidate spans x [%.0f, %.0f], want roughly [10, 90]", loX, hiX)
	}
}

func TestHoughSegments_VerticalLine(t *testing.T) {
	edges := newEdgeMask(120, 120)
	for y := 10; y <= 90; y++ {
		edges[y][50] = true
	}

	candidates := HoughSegments(edges, DefaultHoughParams())
	if len(candidates) == 0 {
		t.Fatal("no candidates for an 81-pixel vertical line")
	}

	c := candidates[0]
	if c.Start.X != 50 || c.End.X != 50 {
		t.Errorf("endpoints (%v, %v) not on x=50", c.Start, c.End)
	}
	if c.Length < 75 {
		t.Errorf("length %.1f, want close to 80", c.Length)
	}
}

func TestHoughSegments_DiagonalLine(t *testing.T) {
	edges := newEdgeMask(120, 120)
	for i := 10; i <= 90; i++ {
		edges[i][i] = true
	}

	candidates := HoughSegments(edges, DefaultHoughParams())
	if len(candidates) == 0 {
		t.Fatal("no candidates for a diagonal line")
	}

	c := candidates[0]
	want := 80 * math.Sqrt2
	if math.Abs(c.Length-want) > 10 {
		t.Errorf("length %.1f, want about %.1f", c.Length, want)
	}
}

func TestHoughSegments_GapSplitsRuns(t *testing.T) {
	// Two collinear runs separated by a 40-pixel break: far wider than
	// MaxLineGap, so they must come out as separate segments.
	edges := newEdgeMask(200, 100)
	for x := 0; x <= 59; x++ {
		edges[50][x] = true
	}
	for x := 100; x <= 159; x++ {
		edges[50][x] = true
	}

	candidates := HoughSegments(edges, DefaultHoughParams())
	if len(candidates) < 2 {
		t.Fatalf("got %d candidates, want 2 separate runs", len(candidates))
	}

	for _, c := range candidates {
		loX := math.Min(c.Start.X, c.End.X)
		hiX := math.Max(c.Start.X, c.End.X)
		if loX <= 59 && hiX >= 100 {
			t.Errorf("candidate [%.0f, %.0f] bridges the gap", loX, hiX)
		}
	}
}

func TestHoughSegments_SmallGapMerged(t *testing.T) {
	// A 6-pixel break is within MaxLineGap and must not split the line.
	edges := newEdgeMask(200, 100)
	for x := 20; x <= 100; x++ {
		edges[50][x] = true
	}
	for x := 107; x <= 180; x++ {
		edges[50][x] = true
	}

	candidates := HoughSegments(edges, DefaultHoughParams())
	if len(candidates) == 0 {
		t.Fatal("no candidates detected")
	}

	c := candidates[0]
	if c.Length < 150 {
		t.Errorf("length %.1f, want a single merged run of about 160", c.Length)
	}
}

func TestHoughSegments_ShortLineRejected(t *testing.T) {
	edges := newEdgeMask(120, 120)
	for x := 40; x <= 70; x++ {
		edges[50][x] = true
	}

	// 31 votes is below the threshold of 50.
	candidates := HoughSegments(edges, DefaultHoughParams())
	if len(candidates) != 0 {
		t.Errorf("got %d candidates for a 31-pixel line, want 0", len(candidates))
	}
}

func TestHoughSegments_EmptyMask(t *testing.T) {
	if got := HoughSegments(newEdgeMask(100, 100), DefaultHoughParams()); len(got) != 0 {
		t.Errorf("empty mask produced %d candidates", len(got))
	}
	if got := HoughSegments(nil, DefaultHoughParams()); got != nil {
		t.Errorf("nil mask produced %v", got)
	}
}

func TestHoughSegments_Deterministic(t *testing.T) {
	edges := newEdgeMask(150, 150)
	for x := 10; x <= 140; x++ {
		edges[30][x] = true
		edges[90][x] = true
	}
	for y := 10; y <= 140; y++ {
		edges[y][60] = true
	}

	a := HoughSegments(edges, DefaultHoughParams())
	b := HoughSegments(edges, DefaultHoughParams())

	if len(a) != len(b) {
		t.Fatalf("runs produced %d and %d candidates", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("candidate %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
