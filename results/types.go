// Package results defines the structured output format for a nonogram
// solve, suitable for writing to JSON and reading back for replay or
// comparison.
package results

import "time"

const SchemaVersion = "1.0.0"

// Results contains the complete output of one solve.
type Results struct {
	Version  string    `json:"version"`
	Metadata Metadata  `json:"metadata"`
	Puzzle   Puzzle    `json:"puzzle"`
	Solution *Solution `json:"solution,omitempty"`
	Events   []Event   `json:"events,omitempty"`
}

// Metadata contains solve execution information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RunID       string    `json:"runId"`
	Strategy    string    `json:"strategy"` // dfs, bestfirst
	Status      string    `json:"status"`   // solved, infeasible, error
	Error       string    `json:"error,omitempty"`
	ComputeTime float64   `json:"computeTime"` // seconds
}

// Puzzle summarizes the puzzle that was solved.
type Puzzle struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	RowClues    [][]int `json:"rowClues"`
	ColumnClues [][]int `json:"columnClues"`
}

// Solution holds the solved grid and the statistics the solver gathered
// while producing it.
type Solution struct {
	Rows  []string `json:"rows"`
	Stats Stats    `json:"stats"`
}

// Stats mirrors solver.Stats for serialization: propagation and branching
// counters plus wall-clock elapsed time.
type Stats struct {
	PropagationPasses        int     `json:"propagationPasses"`
	BranchNodes               int     `json:"branchNodes"`
	CellsForcedByPropagation int     `json:"cellsForcedByPropagation"`
	CellsForcedByBranching   int     `json:"cellsForcedByBranching"`
	ElapsedSeconds           float64 `json:"elapsedSeconds"`
}

// Event is a recorded occurrence during the solve, read back from a
// history.Store when replaying a run.
type Event struct {
	Version int                    `json:"version"`
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}
