package zkcert

import (
	"fmt"
	"math/big"

	"github.com/Mogby/Nonogram/grid"
)

// blockStarts reads cells' actual Filled runs and returns their start
// indices in clue order. cells must already be fully solved (no Unknown)
// and must be a valid placement of clue; Certify is the only caller, and it
// is always given a solver's finished output.
func blockStarts(clue grid.Clue, cells []grid.Cell) ([]int, error) {
	starts := make([]int, 0, len(clue))
	i := 0
	for _, run := range clue {
		for i < len(cells) && cells[i] != grid.Filled {
			i++
		}
		if i+run > len(cells) {
			return nil, fmt.Errorf("zkcert: cells do not contain a run of length %d for clue %v", run, []int(clue))
		}
		for j := 0; j < run; j++ {
			if cells[i+j] != grid.Filled {
				return nil, fmt.Errorf("zkcert: cells do not match clue %v at run starting %d", []int(clue), i)
			}
		}
		starts = append(starts, i)
		i += run
	}
	for ; i < len(cells); i++ {
		if cells[i] == grid.Filled {
			return nil, fmt.Errorf("zkcert: cells contain more runs than clue %v", []int(clue))
		}
	}
	return starts, nil
}

// maskValue bit-packs cells the same way grid's fillMask does: bit i set
// iff cells[i] == Filled.
func maskValue(cells []grid.Cell) *big.Int {
	mask := new(big.Int)
	for i, cell := range cells {
		if cell == grid.Filled {
			mask.SetBit(mask, i, 1)
		}
	}
	return mask
}

// parseHexMask parses a "0x..."-prefixed mask back into a big.Int for use
// as a public circuit input.
func parseHexMask(hex string) (*big.Int, error) {
	mask := new(big.Int)
	if len(hex) < 2 || hex[0:2] != "0x" {
		return nil, fmt.Errorf("zkcert: malformed mask %q", hex)
	}
	if _, ok := mask.SetString(hex[2:], 16); !ok {
		return nil, fmt.Errorf("zkcert: malformed mask %q", hex)
	}
	return mask, nil
}
