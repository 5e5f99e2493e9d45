package milp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const glpkOptimalReport = `Problem:    schedule_creator
Rows:       3
Columns:    3 (3 integer, 3 binary)
Non-zeros:  6
Status:     INTEGER OPTIMAL
Objective:  obj = 42.5 (MINimum)

   No.   Row name        Activity     Lower bound   Upper bound
------ ------------    ------------- ------------- -------------
     1 c0                          1             1             =
     2 c1                          0                           2

   No. Column name       Activity     Lower bound   Upper bound
------ ------------    ------------- ------------- -------------
     1 s1_x0_0      *              1             0             1
     2 s1_x0_1      *              0             0             1
     3 s1_z0_0      *              1             0             1

Integer feasibility conditions:

KKT.PE: max.abs.err = 0.00e+00 on row 0
`

func TestGlpkParseSolutionOptimal(t *testing.T) {
	//** Arrange
	solver := &glpkSolver{}

	//** Act
	solution, err := solver.parseSolution(glpkOptimalReport)

	//** Assert
	assert.Nil(t, err)
	assert.Equal(t, StatusOptimal, solution.Status)
	assert.Equal(t, 42.5, solution.Objective)
	assert.Equal(t, 1.0, solution.values["s1_x0_0"])
	assert.Equal(t, 0.0, solution.values["s1_x0_1"])
	assert.Equal(t, 1.0, solution.values["s1_z0_0"])
}

func TestGlpkParseSolutionWrappedColumnName(t *testing.T) {
	solver := &glpkSolver{}
	report := `Status:     INTEGER OPTIMAL
Objective:  obj = 1 (MINimum)

   No. Column name       Activity     Lower bound   Upper bound
------ ------------    ------------- ------------- -------------
     1 s12_x345_678
                    *              1             0             1
`

	solution, err := solver.parseSolution(report)

	assert.Nil(t, err)
	assert.Equal(t, 1.0, solution.values["s12_x345_678"])
}

func TestGlpkParseSolutionInfeasible(t *testing.T) {
	solver := &glpkSolver{}

	for _, status := range []string{
		"Status:     INTEGER EMPTY",
		"Status:     INFEASIBLE (FINAL)",
	} {
		solution, err := solver.parseSolution(status + "\n")

		assert.Nil(t, err)
		assert.Equal(t, StatusInfeasible, solution.Status)
	}
}

func TestGlpkParseSolutionUnbounded(t *testing.T) {
	solver := &glpkSolver{}

	solution, err := solver.parseSolution("Status:     UNBOUNDED\n")

	assert.Nil(t, err)
	assert.Equal(t, StatusUnbounded, solution.Status)
}

func TestGlpkParseSolutionNotSolved(t *testing.T) {
	solver := &glpkSolver{}

	solution, err := solver.parseSolution("Status:     UNDEFINED\n")

	assert.Nil(t, err)
	assert.Equal(t, StatusNotSolved, solution.Status)
}
