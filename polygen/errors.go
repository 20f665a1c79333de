package polygen

import "fmt"

// InputError reports an invalid caller-supplied parameter. It is raised
// before any sampling takes place.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "polygen: invalid input: " + e.Reason
}

// ShapeError reports a chosen (m, n) pair that cannot support the requested
// difficulty. Unreachable under the default clamps; surfaced rather than
// corrected so a misconfigured tunable range is visible.
type ShapeError struct {
	Delta int
	M     int
	N     int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("polygen: shape (m=%d, n=%d) infeasible for delta=%d", e.M, e.N, e.Delta)
}

// BudgetError reports a degree-budget request that cannot be satisfied with
// all parts >= 1.
type BudgetError struct {
	Total int
	Count int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("polygen: cannot split total=%d into %d positive parts", e.Total, e.Count)
}

// ConsistencyError reports a recomputed baseline that does not match the
// requested difficulty. This signals a defect in the pipeline, never a user
// input problem, and is always a hard failure.
type ConsistencyError struct {
	Delta    int
	Baseline int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("polygen: baseline self-check failed: got %d, want %d", e.Baseline, e.Delta)
}
