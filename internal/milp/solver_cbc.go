package milp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

type cbcSolver struct {
	executable string
}

// NewCbcSolver returns a Solver backed by the COIN-OR CBC executable. An
// empty path falls back to "cbc" resolved through $PATH.
func NewCbcSolver(executable string) Solver {
	if executable == "" {
		executable = "cbc"
	}
	return &cbcSolver{executable: executable}
}

func (solver *cbcSolver) Solve(ctx context.Context, problem *Problem) (*Solution, error) {
	lp := problem.ToLP() // Transform the problem into CPLEX LP string format

	// Create a temporary file to hold the LP content
	inputTempFile, err := os.CreateTemp("", "model-*.lp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	outputTempFile, err := os.CreateTemp("", "cbc_solution-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(outputTempFile.Name()) // Ensure the file is removed after execution

	// Write the LP content to the temporary file
	if _, err := inputTempFile.WriteString(lp); err != nil {
		return nil, fmt.Errorf("failed to write LP model to temporary file: %v", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %v", err)
	}

	cmd := exec.CommandContext(ctx, solver.executable, inputTempFile.Name(), "solve", "solu", outputTempFile.Name())

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("an error occurred during cbc execution: %v : %v", err.Error(), stderr.String())
	}

	output, err := io.ReadAll(outputTempFile) // Read the solution file
	if err != nil {
		return nil, fmt.Errorf("failed to read solution file: %v", err)
	}
	return solver.parseSolution(string(output))
}

// parseSolution reads a CBC solution file. The first line carries the status
// and the objective value ("Optimal - objective value 42.00000000"); the
// remaining lines are "index name value reducedCost" rows, possibly prefixed
// with "**" for out-of-bound values.
func (solver *cbcSolver) parseSolution(solverOutput string) (*Solution, error) {
	lines := strings.Split(strings.TrimSpace(solverOutput), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("empty cbc solution file")
	}

	status := cbcStatus(lines[0])
	if status != StatusOptimal {
		return NewSolution(status, 0, nil), nil
	}

	objective, err := cbcObjective(lines[0])
	if err != nil {
		return nil, err
	}

	values := make(map[string]float64)
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == "**" {
			fields = fields[1:]
		}
		if len(fields) < 3 {
			continue
		}

		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value in cbc solution line %q: %v", line, err)
		}
		values[fields[1]] = value
	}
	return NewSolution(StatusOptimal, objective, values), nil
}

func cbcStatus(header string) Status {
	header = strings.ToLower(header)
	switch {
	case strings.HasPrefix(header, "optimal"):
		return StatusOptimal
	case strings.Contains(header, "infeasible"):
		return StatusInfeasible
	case strings.Contains(header, "unbounded"):
		return StatusUnbounded
	default:
		return StatusNotSolved
	}
}

func cbcObjective(header string) (float64, error) {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return 0, fmt.Errorf("malformed cbc solution header: %q", header)
	}
	objective, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed cbc solution header: %q", header)
	}
	return objective, nil
}
