package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Mogby/Nonogram/grid"
)

// ParseFile reads a puzzle in wire format from path.
func ParseFile(path string) (Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("opening puzzle file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a puzzle in wire format from r:
//
//	line 1:       "W H"
//	next W lines: column clues, j = 0..W-1, blank line means an empty clue
//	next H lines: row clues, i = 0..H-1, same shape
//
// Every malformed-input failure is returned as a *ParseError carrying the
// 1-based input line number the parser was on; a read error from r is
// returned wrapped instead.
func Parse(r io.Reader) (Puzzle, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	nextLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNum++
		return scanner.Text(), true
	}

	header, ok := nextLine()
	if !ok {
		return Puzzle{}, parseErrorf(lineNum+1, "missing dimension line")
	}
	width, height, err := parseDimensions(header)
	if err != nil {
		return Puzzle{}, parseErrorf(lineNum, "%s", err)
	}

	colClues, err := readClues(nextLine, lineNum, width)
	if err != nil {
		return Puzzle{}, err
	}

	rowClues, err := readClues(nextLine, lineNum, height)
	if err != nil {
		return Puzzle{}, err
	}

	if err := scanner.Err(); err != nil {
		return Puzzle{}, fmt.Errorf("reading puzzle: %w", err)
	}

	return Puzzle{
		Width:       width,
		Height:      height,
		RowClues:    rowClues,
		ColumnClues: colClues,
	}, nil
}

func parseDimensions(header string) (width, height int, err error) {
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected \"W H\", got %q", header)
	}
	width, err = strconv.Atoi(fields[0])
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid width %q", fields[0])
	}
	height, err = strconv.Atoi(fields[1])
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid height %q", fields[1])
	}
	return width, height, nil
}

// readClues pulls n consecutive clue lines via nextLine, reporting a
// *ParseError whose line number accounts for lines already consumed
// (baseLine) before this block started.
func readClues(nextLine func() (string, bool), baseLine, n int) ([]grid.Clue, error) {
	clues := make([]grid.Clue, n)
	for k := 0; k < n; k++ {
		text, ok := nextLine()
		if !ok {
			return nil, parseErrorf(baseLine+k+1, "expected %d clue lines, found %d", n, k)
		}
		clue, err := parseClueLine(text)
		if err != nil {
			return nil, parseErrorf(baseLine+k+1, "%s", err)
		}
		clues[k] = clue
	}
	return clues, nil
}

func parseClueLine(text string) (grid.Clue, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return grid.Clue{}, nil
	}
	clue := make(grid.Clue, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid run length %q", f)
		}
		if v <= 0 {
			return nil, fmt.Errorf("run length must be positive, got %d", v)
		}
		clue[i] = v
	}
	return clue, nil
}
