// Package milp models a mixed-integer linear program over binary decision
// variables and hands it to an external solver executable.
package milp

import (
	"fmt"
	"sort"
)

// Variable is a binary (0..1 integer) decision variable owned by a Problem.
type Variable struct {
	index int
	name  string
}

func (variable *Variable) Name() string {
	return variable.name
}

type Sense int

const (
	LessOrEqual Sense = iota
	GreaterOrEqual
	Equal
)

func (sense Sense) String() string {
	switch sense {
	case LessOrEqual:
		return "<="
	case GreaterOrEqual:
		return ">="
	default:
		return "="
	}
}

// LinearExpr is a linear combination of problem variables.
type LinearExpr struct {
	coefficients map[*Variable]float64
}

func NewLinearExpr() *LinearExpr {
	return &LinearExpr{coefficients: make(map[*Variable]float64)}
}

func (expr *LinearExpr) AddTerm(variable *Variable, coefficient float64) *LinearExpr {
	expr.coefficients[variable] += coefficient
	return expr
}

func (expr *LinearExpr) AddExpr(other *LinearExpr) *LinearExpr {
	for variable, coefficient := range other.coefficients {
		expr.coefficients[variable] += coefficient
	}
	return expr
}

func (expr *LinearExpr) Coefficient(variable *Variable) float64 {
	return expr.coefficients[variable]
}

func (expr *LinearExpr) Empty() bool {
	return len(expr.coefficients) == 0
}

type term struct {
	variable    *Variable
	coefficient float64
}

// terms returns the expression's terms ordered by variable creation order,
// so serializations are deterministic.
func (expr *LinearExpr) terms() []term {
	terms := make([]term, 0, len(expr.coefficients))
	for variable, coefficient := range expr.coefficients {
		terms = append(terms, term{variable, coefficient})
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].variable.index < terms[j].variable.index })
	return terms
}

type Constraint struct {
	Name  string
	Expr  *LinearExpr
	Sense Sense
	Rhs   float64
}

// Problem is a linear minimization program over binary variables. It is
// mutable only while the model is being assembled; once handed to a Solver
// it is read-only.
type Problem struct {
	name        string
	variables   []*Variable
	names       map[string]bool
	constraints []Constraint
	objective   *LinearExpr
}

func NewProblem(name string) *Problem {
	return &Problem{
		name:      name,
		names:     make(map[string]bool),
		objective: NewLinearExpr(),
	}
}

func (problem *Problem) Name() string {
	return problem.name
}

// NewBinaryVariable creates a 0..1 integer variable. Names must be unique
// across the whole problem; a duplicate is a modeling bug, not an input
// condition, hence the panic.
func (problem *Problem) NewBinaryVariable(name string) *Variable {
	if problem.names[name] {
		panic(fmt.Sprintf("duplicate variable name: %v", name))
	}
	problem.names[name] = true

	variable := &Variable{index: len(problem.variables), name: name}
	problem.variables = append(problem.variables, variable)
	return variable
}

func (problem *Problem) AddConstraint(name string, expr *LinearExpr, sense Sense, rhs float64) {
	problem.constraints = append(problem.constraints, Constraint{
		Name:  name,
		Expr:  expr,
		Sense: sense,
		Rhs:   rhs,
	})
}

func (problem *Problem) SetObjective(expr *LinearExpr) {
	problem.objective = expr
}

func (problem *Problem) Objective() *LinearExpr {
	return problem.objective
}

func (problem *Problem) Variables() []*Variable {
	return problem.variables
}

func (problem *Problem) Constraints() []Constraint {
	return problem.constraints
}

func (problem *Problem) VariableCount() int {
	return len(problem.variables)
}

func (problem *Problem) ConstraintCount() int {
	return len(problem.constraints)
}
