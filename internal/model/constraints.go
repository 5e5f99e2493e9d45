package model

import (
	"fmt"

	"schedulecreator/internal/catalog"
	"schedulecreator/internal/milp"
)

// addConstraints imposes the semester's three constraint families.
func (model *SemesterModel) addConstraints(problem *milp.Problem) {
	model.addSlotCountConstraints(problem)
	model.addContiguityConstraints(problem)
	model.addGroupExclusivityConstraints(problem)
}

// addSlotCountConstraints forces each class row's cell sum to equal the
// class's required slot count. Hard equality: an unsatisfiable row renders
// the whole model infeasible.
func (model *SemesterModel) addSlotCountConstraints(problem *milp.Problem) {
	for i, class := range model.semester.Classes {
		row := milp.NewLinearExpr()
		for j := range model.matrix[i] {
			row.AddTerm(model.matrix[i][j], 1)
		}
		problem.AddConstraint(
			fmt.Sprintf("s%v_slots_%v", model.semester.Id, i),
			row, milp.Equal, float64(class.SlotCount),
		)
	}
}

// addContiguityConstraints forces each class row's allocation into exactly
// one contiguous run that stays within a single day.
//
// For every legal window [j, j+k) an auxiliary binary indicator z_j is tied
// to the window sum x_j = Σ cells with
//
//	z_j <= x_j / k      (as k·z_j − x_j <= 0)
//	z_j >= x_j − k + 1  (as x_j − z_j <= k − 1)
//
// Since x_j is an integer in [0, k], z_j = 1 exactly when the window is
// fully allocated. Σ z_j == 1 then admits one fully allocated window, and
// the slot-count equality pins the total allocation to that window's length,
// so every allocated slot lies inside it.
func (model *SemesterModel) addContiguityConstraints(problem *milp.Problem) {
	for i, class := range model.semester.Classes {
		k := class.SlotCount
		indicators := milp.NewLinearExpr()

		for j := 0; j+k <= model.calendar.TotalSlots(); j++ {
			// A window that starts too close to the day's end would wrap
			// into the next day
			if !model.calendar.LegalWindowStart(j, k) {
				continue
			}

			z := problem.NewBinaryVariable(fmt.Sprintf("s%v_z%v_%v", model.semester.Id, i, j))

			upper := milp.NewLinearExpr().AddTerm(z, float64(k))
			lower := milp.NewLinearExpr().AddTerm(z, -1)
			for cell := j; cell < j+k; cell++ {
				upper.AddTerm(model.matrix[i][cell], -1)
				lower.AddTerm(model.matrix[i][cell], 1)
			}

			problem.AddConstraint(
				fmt.Sprintf("s%v_window_ub_%v_%v", model.semester.Id, i, j),
				upper, milp.LessOrEqual, 0,
			)
			problem.AddConstraint(
				fmt.Sprintf("s%v_window_lb_%v_%v", model.semester.Id, i, j),
				lower, milp.LessOrEqual, float64(k-1),
			)
			indicators.AddTerm(z, 1)
		}

		problem.AddConstraint(
			fmt.Sprintf("s%v_contiguous_%v", model.semester.Id, i),
			indicators, milp.Equal, 1,
		)
	}
}

// addGroupExclusivityConstraints caps, per slot, the simultaneously active
// classes drawn from the common group plus one elective track at 1. Distinct
// tracks may run classes against each other, never against the common
// curriculum.
func (model *SemesterModel) addGroupExclusivityConstraints(problem *milp.Problem) {
	commonGroup := model.semester.CommonGroup()
	nonCommonGroups := model.semester.NonCommonGroups()

	for j := 0; j < model.calendar.TotalSlots(); j++ {
		commonSum := milp.NewLinearExpr()
		for i := range commonGroup.Classes {
			commonSum.AddTerm(model.matrix[i][j], 1)
		}

		if len(nonCommonGroups) == 0 {
			problem.AddConstraint(
				fmt.Sprintf("s%v_exclusive_%v", model.semester.Id, j),
				commonSum, milp.LessOrEqual, 1,
			)
			continue
		}

		offset := len(commonGroup.Classes)
		for g, group := range nonCommonGroups {
			combined := milp.NewLinearExpr().AddExpr(commonSum)
			for i := range group.Classes {
				combined.AddTerm(model.matrix[offset+i][j], 1)
			}
			problem.AddConstraint(
				fmt.Sprintf("s%v_exclusive_g%v_%v", model.semester.Id, g+1, j),
				combined, milp.LessOrEqual, 1,
			)
			offset += len(group.Classes)
		}
	}
}

// addTeacherConstraints prevents any teacher from being scheduled in two
// classes during the same slot, across every semester sharing the calendar.
func addTeacherConstraints(problem *milp.Problem, cat *catalog.Catalog, models []*SemesterModel) {
	for _, teacher := range cat.SortedTeachers() {
		for j := 0; j < cat.Calendar.TotalSlots(); j++ {
			occupancy := milp.NewLinearExpr()
			for _, model := range models {
				for i, class := range model.semester.Classes {
					if class.ContainsTeacher(teacher) {
						occupancy.AddTerm(model.matrix[i][j], 1)
					}
				}
			}
			if occupancy.Empty() {
				continue
			}
			problem.AddConstraint(
				fmt.Sprintf("teacher_%v_slot_%v", teacher.Id, j),
				occupancy, milp.LessOrEqual, 1,
			)
		}
	}
}
