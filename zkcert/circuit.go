// Package zkcert certifies, via a Groth16 proof, that a solved line's
// Filled/Empty pattern is a valid run-length decomposition of its clue —
// without the verifier needing the line's cell values, only its public
// commitment (the grid package's FillMask).
package zkcert

import (
	"github.com/consensys/gnark/frontend"

	"github.com/Mogby/Nonogram/grid"
)

// maxCells bounds every compiled LineCircuit: circuits are compiled ahead
// of time per clue, and every line certified against that circuit must pad
// its witness to this width.
const maxCells = 64

// LineCircuit proves knowledge of a Cells assignment whose block starts
// satisfy Clue's run lengths in order, and whose bit-packed value equals
// the public Mask commitment.
//
// Clue is baked into the circuit at compile time: a distinct clue compiles
// a distinct circuit, mirroring how Prover.RegisterCircuit keys circuits by
// name.
type LineCircuit struct {
	Cells      [maxCells]frontend.Variable `gnark:",secret"`
	BlockStart []frontend.Variable         `gnark:",secret"`
	Mask       frontend.Variable           `gnark:",public"`

	Clue   []int
	Length int
}

// NewLineCircuit allocates a circuit shape for clue over a line of length.
// Both must be fixed for the lifetime of the compiled circuit.
func NewLineCircuit(clue grid.Clue, length int) *LineCircuit {
	return &LineCircuit{
		BlockStart: make([]frontend.Variable, len(clue)),
		Clue:       []int(clue),
		Length:     length,
	}
}

// Define builds the constraint system: every cell is boolean, block starts
// are ordered with the clue's required gaps, every cell's value matches
// whether it falls inside a block, and the packed bitmask equals Mask.
func (c *LineCircuit) Define(api frontend.API) error {
	for i := 0; i < c.Length; i++ {
		api.AssertIsBoolean(c.Cells[i])
	}

	prevEnd := frontend.Variable(0)
	for m, run := range c.Clue {
		start := c.BlockStart[m]
		api.AssertIsLessOrEqual(prevEnd, start)
		end := api.Add(start, run)
		api.AssertIsLessOrEqual(end, c.Length)
		prevEnd = api.Add(end, 1) // one-cell separator before the next block
	}

	for i := 0; i < c.Length; i++ {
		membership := frontend.Variable(0)
		for m, run := range c.Clue {
			start := c.BlockStart[m]
			end := api.Add(start, run)
			// inside iff start <= i < end
			afterStart := api.Sub(1, isLess(api, frontend.Variable(i), start))
			beforeEnd := isLess(api, frontend.Variable(i), end)
			inBlock := api.Mul(afterStart, beforeEnd)
			membership = api.Add(membership, inBlock)
		}
		api.AssertIsEqual(c.Cells[i], membership)
	}

	mask := frontend.Variable(0)
	power := frontend.Variable(1)
	for i := 0; i < c.Length; i++ {
		mask = api.Add(mask, api.Mul(c.Cells[i], power))
		power = api.Mul(power, 2)
	}
	api.AssertIsEqual(mask, c.Mask)

	return nil
}

// isLess returns 1 if a < b, 0 otherwise, for values known to fit well
// within the scalar field (line positions and lengths are tiny by
// comparison), via the sign of their difference.
func isLess(api frontend.API, a, b frontend.Variable) frontend.Variable {
	cmp := api.Cmp(a, b)
	// cmp is -1, 0, or 1; map -1 -> 1 (a<b), {0,1} -> 0.
	return api.Select(api.IsZero(api.Add(cmp, 1)), 1, 0)
}
