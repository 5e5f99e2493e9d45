package milp

import (
	"fmt"
	"strings"
)

// ToLP serializes the problem into CPLEX LP string format, the lingua franca
// of the MILP solver executables.
func (problem *Problem) ToLP() string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "\\ %v\n", problem.name)

	builder.WriteString("Minimize\n obj:")
	writeExpr(&builder, problem.objective)
	builder.WriteString("\n")

	builder.WriteString("Subject To\n")
	for _, constraint := range problem.constraints {
		fmt.Fprintf(&builder, " %v:", constraint.Name)
		writeExpr(&builder, constraint.Expr)
		fmt.Fprintf(&builder, " %v %v\n", constraint.Sense, formatNumber(constraint.Rhs))
	}

	builder.WriteString("Binary\n")
	for _, variable := range problem.variables {
		fmt.Fprintf(&builder, " %v\n", variable.name)
	}

	builder.WriteString("End\n")
	return builder.String()
}

func writeExpr(builder *strings.Builder, expr *LinearExpr) {
	for _, term := range expr.terms() {
		if term.coefficient == 0 {
			continue
		}
		sign := "+"
		coefficient := term.coefficient
		if coefficient < 0 {
			sign = "-"
			coefficient = -coefficient
		}
		fmt.Fprintf(builder, " %v %v %v", sign, formatNumber(coefficient), term.variable.name)
	}
}

func formatNumber(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.6f", value), "0"), ".")
}
