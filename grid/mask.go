package grid

import "github.com/holiman/uint256"

// maxMaskBits is the widest line a fillMask can represent. Lines longer than
// this simply go without the cache; every correctness path in this package
// works entirely off Cells and never depends on fillMask being present.
const maxMaskBits = 256

// fillMask is a compact bitset of a line's Filled cells, bit i set iff
// Cells[i] == Filled. It exists purely as cheap, inspectable cache state —
// grounded on the same holiman/uint256 register arithmetic this lineage
// uses elsewhere for fixed-width numeric state — and is recomputed from
// scratch whenever requested rather than maintained incrementally.
type fillMask struct {
	bits *uint256.Int
}

// computeFillMask builds the Filled-cell bitset for cells, or returns nil
// when the line is too wide to represent in a single 256-bit register.
func computeFillMask(cells []Cell) *fillMask {
	if len(cells) > maxMaskBits {
		return nil
	}
	bits := uint256.NewInt(0)
	one := uint256.NewInt(1)
	for i, c := range cells {
		if c != Filled {
			continue
		}
		bit := new(uint256.Int).Lsh(one, uint(i))
		bits.Or(bits, bit)
	}
	return &fillMask{bits: bits}
}

// equal reports whether two masks describe the same Filled pattern. A nil
// mask (line too wide, or cache never populated) never compares equal to
// anything, including another nil — callers must treat "unknown" as "assume
// changed" rather than skip work on its account. UpdateLine relies on this:
// it is the no-op fast-path check against the mask left by the previous
// call.
func (f *fillMask) equal(other *fillMask) bool {
	if f == nil || other == nil {
		return false
	}
	return f.bits.Cmp(other.bits) == 0
}

// refreshFillMask recomputes line's cached mask in place.
func (l *Line) refreshFillMask() {
	l.fillMask = computeFillMask(l.Cells)
}

// FillMaskHex returns the line's cached Filled-cell bitmask as a 0x-prefixed
// hex string, or "" when no mask is cached (line wider than 256 cells, or
// RefreshFillMask/UpdateLine has not populated one yet). zkcert's public Mask
// uses the same bit-per-Filled-cell encoding, computed from the cells.
func (l *Line) FillMaskHex() string {
	if l.fillMask == nil {
		return ""
	}
	return l.fillMask.bits.Hex()
}

// RefreshFillMask recomputes and caches the line's Filled-cell bitmask.
func (l *Line) RefreshFillMask() {
	l.refreshFillMask()
}
