package milp

import "context"

type Status int

const (
	StatusNotSolved Status = iota
	StatusOptimal
	StatusInfeasible
	StatusUnbounded
)

func (status Status) String() string {
	switch status {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "not solved"
	}
}

// Solution carries the solver outcome. Variable values are meaningful only
// when the status is optimal; ties between equally optimal solutions may
// resolve differently between runs.
type Solution struct {
	Status    Status
	Objective float64
	values    map[string]float64
}

func NewSolution(status Status, objective float64, values map[string]float64) *Solution {
	return &Solution{
		Status:    status,
		Objective: objective,
		values:    values,
	}
}

// Value returns the solved value of a variable. Solvers may omit variables
// at zero from their reports, so a missing entry reads as 0.
func (solution *Solution) Value(variable *Variable) float64 {
	return solution.values[variable.name]
}

// Solver is the boundary to an external MILP solving executable: it receives
// the assembled variables, constraints and minimization objective and
// returns a status along with a value per variable when optimal.
type Solver interface {
	Solve(ctx context.Context, problem *Problem) (*Solution, error)
}
