package templates_test

import (
	"testing"

	"github.com/Mogby/Nonogram/templates"
)

func TestRegistryListAndGet(t *testing.T) {
	names := templates.List()
	if len(names) == 0 {
		t.Fatal("expected at least one registered template")
	}

	for _, name := range names {
		tmpl, err := templates.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if tmpl.Name() != name {
			t.Errorf("template registered as %q reports Name() %q", name, tmpl.Name())
		}
	}
}

func TestGetUnknownTemplate(t *testing.T) {
	if _, err := templates.Get("does-not-exist"); err == nil {
		t.Error("expected an error for an unknown template")
	}
}

func TestEveryTemplateGeneratesAValidPuzzle(t *testing.T) {
	for _, name := range templates.List() {
		tmpl, _ := templates.Get(name)
		p, err := tmpl.Generate(nil)
		if err != nil {
			t.Fatalf("%s: Generate: %v", name, err)
		}
		if p.Width <= 0 || p.Height <= 0 {
			t.Errorf("%s: non-positive dimensions %dx%d", name, p.Width, p.Height)
		}
		if len(p.RowClues) != p.Height {
			t.Errorf("%s: expected %d row clues, got %d", name, p.Height, len(p.RowClues))
		}
		if len(p.ColumnClues) != p.Width {
			t.Errorf("%s: expected %d column clues, got %d", name, p.Width, len(p.ColumnClues))
		}
	}
}

func TestCheckerboardProducesExpectedRowClue(t *testing.T) {
	tmpl := &templates.CheckerboardTemplate{}
	p, err := tmpl.Generate(map[string]interface{}{"width": 4, "height": 4})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// X.X. -> runs of 1, 1
	want := []int{1, 1}
	got := []int(p.RowClues[0])
	if len(got) != len(want) {
		t.Fatalf("row clue = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row clue = %v, want %v", got, want)
		}
	}
}
