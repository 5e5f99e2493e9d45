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

type glpkSolver struct {
	executable string
}

// NewGlpkSolver returns a Solver backed by GLPK's glpsol executable. An
// empty path falls back to "glpsol" resolved through $PATH.
func NewGlpkSolver(executable string) Solver {
	if executable == "" {
		executable = "glpsol"
	}
	return &glpkSolver{executable: executable}
}

func (solver *glpkSolver) Solve(ctx context.Context, problem *Problem) (*Solution, error) {
	lp := problem.ToLP() // Transform the problem into CPLEX LP string format

	inputTempFile, err := os.CreateTemp("", "model-*.lp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	outputTempFile, err := os.CreateTemp("", "glpsol_solution-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(outputTempFile.Name()) // Ensure the file is removed after execution

	if _, err := inputTempFile.WriteString(lp); err != nil {
		return nil, fmt.Errorf("failed to write LP model to temporary file: %v", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %v", err)
	}

	cmd := exec.CommandContext(ctx, solver.executable, "--lp", inputTempFile.Name(), "--output", outputTempFile.Name())

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	// glpsol exits 0 even for infeasible models; the status lives in the report
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("an error occurred during glpsol execution: %v : %v", err.Error(), stderr.String())
	}

	output, err := io.ReadAll(outputTempFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read solution file: %v", err)
	}
	return solver.parseSolution(string(output))
}

// parseSolution reads a glpsol plain-text solution report: "Status:" and
// "Objective:" header lines followed by a column-activity table. Long column
// names wrap onto their own line, with the activity on the next one.
func (solver *glpkSolver) parseSolution(solverOutput string) (*Solution, error) {
	lines := strings.Split(solverOutput, "\n")

	status := StatusNotSolved
	objective := 0.0
	values := make(map[string]float64)

	inColumns := false
	pendingName := ""
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "Status:"):
			status = glpkStatus(trimmed)
		case strings.HasPrefix(trimmed, "Objective:"):
			value, err := glpkObjective(trimmed)
			if err != nil {
				return nil, err
			}
			objective = value
		case strings.HasPrefix(trimmed, "No.") && strings.Contains(trimmed, "Column name"):
			inColumns = true
		case inColumns && strings.HasPrefix(trimmed, "No.") && strings.Contains(trimmed, "Row name"):
			inColumns = false
		case inColumns && trimmed == "" && pendingName == "":
			inColumns = false
		case inColumns:
			name, value, complete, err := glpkColumn(trimmed, pendingName)
			if err != nil {
				return nil, err
			}
			if !complete {
				pendingName = name
				continue
			}
			pendingName = ""
			if name != "" {
				values[name] = value
			}
		}
	}

	if status != StatusOptimal {
		return NewSolution(status, 0, nil), nil
	}
	return NewSolution(StatusOptimal, objective, values), nil
}

func glpkStatus(line string) Status {
	line = strings.ToUpper(line)
	switch {
	case strings.Contains(line, "OPTIMAL"):
		return StatusOptimal
	case strings.Contains(line, "EMPTY") || strings.Contains(line, "INFEASIBLE") || strings.Contains(line, "HAS NO"):
		return StatusInfeasible
	case strings.Contains(line, "UNBOUNDED"):
		return StatusUnbounded
	default:
		return StatusNotSolved
	}
}

func glpkObjective(line string) (float64, error) {
	// "Objective:  obj = 42 (MINimum)"
	parts := strings.Split(line, "=")
	if len(parts) < 2 {
		return 0, fmt.Errorf("malformed glpsol objective line: %q", line)
	}
	fields := strings.Fields(parts[1])
	if len(fields) == 0 {
		return 0, fmt.Errorf("malformed glpsol objective line: %q", line)
	}
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed glpsol objective line: %q", line)
	}
	return value, nil
}

// glpkColumn parses one line of the column-activity table. It returns
// complete=false when the line only carries the (wrapped) column name.
func glpkColumn(line, pendingName string) (name string, value float64, complete bool, err error) {
	if strings.HasPrefix(line, "---") {
		return "", 0, true, nil
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", 0, true, nil
	}

	valueFields := fields
	if pendingName != "" {
		name = pendingName
	} else {
		if _, err := strconv.Atoi(fields[0]); err != nil {
			return "", 0, true, nil // Not a column row
		}
		if len(fields) == 2 {
			return fields[1], 0, false, nil // Wrapped long name
		}
		if len(fields) < 3 {
			return "", 0, true, nil
		}
		name = fields[1]
		valueFields = fields[2:]
	}

	// An integer column carries a "*" marker before its activity
	if valueFields[0] == "*" {
		valueFields = valueFields[1:]
	}
	if len(valueFields) == 0 {
		return "", 0, true, fmt.Errorf("malformed glpsol column line: %q", line)
	}

	value, err = strconv.ParseFloat(valueFields[0], 64)
	if err != nil {
		return "", 0, true, fmt.Errorf("malformed glpsol column line: %q", line)
	}
	return name, value, true, nil
}
