package zkcert

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/Mogby/Nonogram/grid"
)

// curve matches the one the rest of this lineage's proving code targets.
var curve = ecc.BN254

// compiledLine holds one clue+length's compiled constraint system and
// Groth16 keys, analogous to CompiledCircuit but scoped to a single line
// shape rather than a named general-purpose circuit.
type compiledLine struct {
	clue   []int
	length int
	cs     constraint.ConstraintSystem
	pk     groth16.ProvingKey
	vk     groth16.VerifyingKey
}

// Certifier compiles one Groth16 circuit per distinct (clue, length) shape
// and reuses it across every line that shares that shape, since trusted
// setup dominates the cost of certifying any single line.
type Certifier struct {
	mu       sync.RWMutex
	compiled map[string]*compiledLine
}

// NewCertifier returns an empty Certifier. Shapes are compiled lazily the
// first time Certify or Verify sees them.
func NewCertifier() *Certifier {
	return &Certifier{compiled: make(map[string]*compiledLine)}
}

func lineKey(clue []int, length int) string {
	return fmt.Sprintf("%d:%v", length, clue)
}

// compile returns the compiled circuit for (clue, length), compiling and
// running trusted setup on first use.
func (c *Certifier) compile(clue grid.Clue, length int) (*compiledLine, error) {
	key := lineKey(clue, length)

	c.mu.RLock()
	existing, ok := c.compiled[key]
	c.mu.RUnlock()
	if ok {
		return existing, nil
	}

	circuit := NewLineCircuit(clue, length)
	cs, err := frontend.Compile(curve.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("zkcert: compile circuit: %w", err)
	}
	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, fmt.Errorf("zkcert: setup: %w", err)
	}

	compiled := &compiledLine{clue: []int(clue), length: length, cs: cs, pk: pk, vk: vk}
	c.mu.Lock()
	c.compiled[key] = compiled
	c.mu.Unlock()
	return compiled, nil
}

// Certificate is a portable Groth16 proof that some solved line satisfies
// its clue, together with the public commitment the proof is bound to.
type Certificate struct {
	Clue   []int  `json:"clue"`
	Length int    `json:"length"`
	Mask   string `json:"mask"` // 0x-prefixed hex, matches grid.Line.FillMaskHex
	Proof  []byte `json:"proof"`
}

// Certify proves that cells is a valid run-length placement of clue,
// without the resulting Certificate revealing cells to a verifier — only
// Mask, a commitment to the pattern, is public.
func Certify(c *Certifier, clue grid.Clue, cells []grid.Cell) (*Certificate, error) {
	if len(cells) > maxCells {
		return nil, fmt.Errorf("zkcert: line of %d cells exceeds the %d-cell circuit bound", len(cells), maxCells)
	}
	starts, err := blockStarts(clue, cells)
	if err != nil {
		return nil, err
	}

	compiled, err := c.compile(clue, len(cells))
	if err != nil {
		return nil, err
	}

	assignment := NewLineCircuit(clue, len(cells))
	for i, cell := range cells {
		assignment.Cells[i] = boolVar(cell == grid.Filled)
	}
	for i := len(cells); i < maxCells; i++ {
		assignment.Cells[i] = 0
	}
	for m, s := range starts {
		assignment.BlockStart[m] = s
	}
	assignment.Mask = maskValue(cells)

	witness, err := frontend.NewWitness(assignment, curve.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("zkcert: build witness: %w", err)
	}
	proof, err := groth16.Prove(compiled.cs, compiled.pk, witness)
	if err != nil {
		return nil, fmt.Errorf("zkcert: prove: %w", err)
	}

	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("zkcert: serialize proof: %w", err)
	}

	return &Certificate{
		Clue:   []int(clue),
		Length: len(cells),
		Mask:   fmt.Sprintf("0x%x", maskValue(cells)),
		Proof:  buf.Bytes(),
	}, nil
}

// Verify checks cert's proof against its declared clue and mask, recompiling
// (or reusing) the matching circuit shape. It never needs the original
// cells.
func Verify(c *Certifier, cert *Certificate) error {
	compiled, err := c.compile(cert.Clue, cert.Length)
	if err != nil {
		return err
	}

	proof := groth16.NewProof(curve)
	if _, err := proof.ReadFrom(bytes.NewReader(cert.Proof)); err != nil {
		return fmt.Errorf("zkcert: decode proof: %w", err)
	}

	assignment := NewLineCircuit(cert.Clue, cert.Length)
	maskVal, err := parseHexMask(cert.Mask)
	if err != nil {
		return err
	}
	assignment.Mask = maskVal

	publicWitness, err := frontend.NewWitness(assignment, curve.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("zkcert: build public witness: %w", err)
	}

	if err := groth16.Verify(proof, compiled.vk, publicWitness); err != nil {
		return fmt.Errorf("zkcert: verify: %w", err)
	}
	return nil
}

func boolVar(b bool) int {
	if b {
		return 1
	}
	return 0
}
