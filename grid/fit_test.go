package grid

import (
	"reflect"
	"testing"
)

func TestFitLeftInfeasible(t *testing.T) {
	// S5: fit_left(clue = [3,1,1], line = "~~~~~X") => INFEASIBLE.
	clue := Clue{3, 1, 1}
	cells := parseCells("~~~~~X")

	_, ok := FitLeft(clue, cells)
	if ok {
		t.Fatal("expected FitLeft to report infeasible")
	}
}

func TestFitRightSymmetry(t *testing.T) {
	// S6: fit_right(clue = [3,1], line = "~~~~~~") => [1, 5];
	// fit_left on the same input => [0, 4].
	clue := Clue{3, 1}
	cells := parseCells("~~~~~~")

	right, ok := FitRight(clue, cells)
	if !ok {
		t.Fatal("expected FitRight to find a placement")
	}
	if !reflect.DeepEqual(right, Placement{1, 5}) {
		t.Errorf("FitRight = %v, want [1 5]", right)
	}

	left, ok := FitLeft(clue, cells)
	if !ok {
		t.Fatal("expected FitLeft to find a placement")
	}
	if !reflect.DeepEqual(left, Placement{0, 4}) {
		t.Errorf("FitLeft = %v, want [0 4]", left)
	}
}

func TestFitLeftExactFit(t *testing.T) {
	// Sum(r) + (k-1) == L: exactly one placement, both fits coincide.
	clue := Clue{2, 1, 2}
	cells := make([]Cell, clue.MinLength())

	left, ok := FitLeft(clue, cells)
	if !ok {
		t.Fatal("expected a placement")
	}
	right, ok := FitRight(clue, cells)
	if !ok {
		t.Fatal("expected a placement")
	}
	if !reflect.DeepEqual(left, right) {
		t.Errorf("exact-fit line: left=%v right=%v, want equal", left, right)
	}
	want := Placement{0, 3, 5}
	if !reflect.DeepEqual(left, want) {
		t.Errorf("FitLeft = %v, want %v", left, want)
	}
}

func TestFitLeftEmptyClue(t *testing.T) {
	p, ok := FitLeft(Clue{}, make([]Cell, 5))
	if !ok || len(p) != 0 {
		t.Fatalf("FitLeft with empty clue = %v, %v; want empty placement, true", p, ok)
	}
}

// checkValidPlacement (P1) checks that a placement returned by FitLeft is valid
// against the line: every cell in a block is not Empty, every cell outside
// every block is not Filled.
func checkValidPlacement(t *testing.T, clue Clue, cells []Cell, p Placement) {
	t.Helper()
	if len(p) != len(clue) {
		t.Fatalf("placement length %d != clue length %d", len(p), len(clue))
	}
	covered := make([]bool, len(cells))
	for i, start := range p {
		if i > 0 && p[i-1]+clue[i-1] > start-1 {
			t.Fatalf("blocks %d and %d overlap or touch: %v", i-1, i, p)
		}
		for j := start; j < start+clue[i]; j++ {
			if cells[j] == Empty {
				t.Fatalf("block %d covers Empty cell at %d", i, j)
			}
			covered[j] = true
		}
	}
	for j, c := range cells {
		if !covered[j] && c == Filled {
			t.Fatalf("Filled cell at %d is not covered by any block: %v", j, p)
		}
	}
}

func TestFitLeftSoundnessTableDriven(t *testing.T) {
	cases := []struct {
		name  string
		clue  Clue
		cells []Cell
	}{
		{"all unknown", Clue{1, 1, 1}, parseCells("~~~~~")},
		{"forced intersection", Clue{3}, parseCells(".~~~.")},
		{"pinned filled", Clue{2, 2}, parseCells("~X~~~~")},
		{"single run", Clue{1}, parseCells("~~~~~")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			left, ok := FitLeft(tc.clue, tc.cells)
			if !ok {
				t.Fatal("expected feasible placement")
			}
			checkValidPlacement(t, tc.clue, tc.cells, left)

			right, ok := FitRight(tc.clue, tc.cells)
			if !ok {
				t.Fatal("expected feasible placement")
			}
			checkValidPlacement(t, tc.clue, tc.cells, right)

			for i := range tc.clue {
				if left[i] > right[i] {
					t.Errorf("left[%d]=%d > right[%d]=%d", i, left[i], i, right[i])
				}
			}
		})
	}
}

func TestFitLeftRespectsSeparator(t *testing.T) {
	// A run immediately followed by a Filled cell cannot be a valid block
	// boundary: the separator rule must reject it.
	clue := Clue{2, 1}
	cells := parseCells("~~X~~")
	left, ok := FitLeft(clue, cells)
	if !ok {
		t.Fatal("expected feasible placement")
	}
	checkValidPlacement(t, clue, cells, left)
}
