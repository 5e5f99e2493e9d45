package model

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"schedulecreator/internal/catalog"
	"schedulecreator/internal/config"
	"schedulecreator/internal/milp"
)

// InfeasibleError is the terminal outcome of a run whose model admits no
// optimal solution; no partial schedule exists behind it.
type InfeasibleError struct {
	Status milp.Status
}

func (err InfeasibleError) Error() string {
	return fmt.Sprintf("no optimal schedule exists: solver status is %v", err.Status)
}

// SemesterTimetable is one semester's solved output: the raw cell values for
// grid rendering and the decoded blocks sorted by start slot.
type SemesterTimetable struct {
	Semester  *catalog.Semester
	Values    [][]float64
	Schedules []ClassSchedule
}

type Timetable struct {
	Semesters   []SemesterTimetable
	Variables   int
	Constraints int
	Objective   float64
}

type Scheduler interface {
	// Build assembles the full MILP from the catalog, solves it and decodes
	// the solution. A non-optimal solver status returns InfeasibleError.
	Build(ctx context.Context, cat *catalog.Catalog) (*Timetable, error)

	// Verify independently re-checks a decoded timetable against the catalog.
	Verify(timetable *Timetable, cat *catalog.Catalog) bool
}

type milpScheduler struct {
	solver       milp.Solver
	coefficients config.Coefficients
	logger       *zap.Logger
}

func NewScheduler(solver milp.Solver, coefficients config.Coefficients, logger *zap.Logger) Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &milpScheduler{
		solver:       solver,
		coefficients: coefficients,
		logger:       logger,
	}
}

func (scheduler *milpScheduler) Build(ctx context.Context, cat *catalog.Catalog) (*Timetable, error) {
	//** Assemble the MILP
	problem := milp.NewProblem("schedule_creator")
	objective := milp.NewLinearExpr()

	models := make([]*SemesterModel, 0, len(cat.Semesters))
	for _, semester := range cat.Semesters {
		model, err := NewSemesterModel(problem, semester, cat.Calendar)
		if err != nil {
			return nil, err
		}

		objective.AddExpr(model.objective(scheduler.coefficients))
		model.addConstraints(problem)
		models = append(models, model)
	}

	addTeacherConstraints(problem, cat, models)
	problem.SetObjective(objective)

	scheduler.logger.Info("model assembled",
		zap.Int("semesters", len(models)),
		zap.Int("variables", problem.VariableCount()),
		zap.Int("constraints", problem.ConstraintCount()),
	)

	//** Solve
	solution, err := scheduler.solver.Solve(ctx, problem)
	if err != nil {
		return nil, fmt.Errorf("an error occurred during the solve: %w", err)
	}
	if solution.Status != milp.StatusOptimal {
		return nil, InfeasibleError{Status: solution.Status}
	}

	scheduler.logger.Info("model solved", zap.Float64("objective", solution.Objective))

	//** Decode the solution
	timetable := &Timetable{
		Variables:   problem.VariableCount(),
		Constraints: problem.ConstraintCount(),
		Objective:   solution.Objective,
	}
	for _, model := range models {
		schedules, values, err := extractSchedules(model, solution, cat.Slots)
		if err != nil {
			return nil, err
		}
		timetable.Semesters = append(timetable.Semesters, SemesterTimetable{
			Semester:  model.semester,
			Values:    values,
			Schedules: schedules,
		})
	}

	return timetable, nil
}

func (scheduler *milpScheduler) Verify(timetable *Timetable, cat *catalog.Catalog) bool {
	return verify(timetable, cat)
}
