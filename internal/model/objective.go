package model

import (
	"schedulecreator/internal/catalog"
	"schedulecreator/internal/config"
	"schedulecreator/internal/milp"
)

// preferenceWeight maps a teacher's preference code to its objective
// coefficient. Unset codes never reach the objective.
func preferenceWeight(coefficients config.Coefficients, preference catalog.SlotPreference) float64 {
	switch preference {
	case catalog.PreferenceNotAvailable:
		return coefficients.PreferenceNotAvailable
	case catalog.PreferenceIfNotOtherwisePossible:
		return coefficients.PreferenceIfNotOtherwisePossible
	case catalog.PreferencePreferablyNot:
		return coefficients.PreferencePreferablyNot
	case catalog.PreferenceIdeallyYes:
		return coefficients.PreferenceIdeallyYes
	case catalog.PreferenceStrongPreference:
		return coefficients.PreferenceStrongPreference
	default:
		return coefficients.PreferenceNeutral
	}
}

// objective sums the semester's five fragments into one expression to be
// minimized alongside the other semesters'.
func (model *SemesterModel) objective(coefficients config.Coefficients) *milp.LinearExpr {
	objective := milp.NewLinearExpr()
	objective.AddExpr(model.unallocatedSlotsObjective())
	objective.AddExpr(model.teacherPreferencesObjective(coefficients))
	objective.AddExpr(model.firstHourObjective(coefficients))
	objective.AddExpr(model.lunchBreakObjective(coefficients))
	objective.AddExpr(model.eveningHoursObjective(coefficients))
	return objective
}

// unallocatedSlotsObjective is the negated sum of every cell. Under the
// slot-count equality constraint it is constant across feasible solutions
// and only shifts the reported objective value.
func (model *SemesterModel) unallocatedSlotsObjective() *milp.LinearExpr {
	expr := milp.NewLinearExpr()
	for i := range model.matrix {
		for j := range model.matrix[i] {
			expr.AddTerm(model.matrix[i][j], -1)
		}
	}
	return expr
}

// teacherPreferencesObjective prices every cell with the assigned teachers'
// slot preferences. Dividing by the class's slot count makes the penalty an
// average-per-hour cost, so classes of different durations compare fairly.
func (model *SemesterModel) teacherPreferencesObjective(coefficients config.Coefficients) *milp.LinearExpr {
	expr := milp.NewLinearExpr()
	for i, class := range model.semester.Classes {
		for _, teacher := range class.Teachers {
			for j, preference := range teacher.SlotPreferences {
				if preference == catalog.PreferenceUnset {
					continue
				}
				expr.AddTerm(model.matrix[i][j], preferenceWeight(coefficients, preference)/float64(class.SlotCount))
			}
		}
	}
	return expr
}

func (model *SemesterModel) firstHourObjective(coefficients config.Coefficients) *milp.LinearExpr {
	expr := milp.NewLinearExpr()
	for i, class := range model.semester.Classes {
		for day := 0; day < model.calendar.ClassDays(); day++ {
			expr.AddTerm(model.matrix[i][model.calendar.DayStart(day)], coefficients.FirstHour/float64(class.SlotCount))
		}
	}
	return expr
}

func (model *SemesterModel) lunchBreakObjective(coefficients config.Coefficients) *milp.LinearExpr {
	expr := milp.NewLinearExpr()
	for i, class := range model.semester.Classes {
		for j := range model.matrix[i] {
			if model.calendar.IsLunchBreak(j) {
				expr.AddTerm(model.matrix[i][j], coefficients.LunchBreak/float64(class.SlotCount))
			}
		}
	}
	return expr
}

func (model *SemesterModel) eveningHoursObjective(coefficients config.Coefficients) *milp.LinearExpr {
	expr := milp.NewLinearExpr()
	for i, class := range model.semester.Classes {
		for j := range model.matrix[i] {
			if model.calendar.IsEvening(j) {
				expr.AddTerm(model.matrix[i][j], coefficients.EveningHours/float64(class.SlotCount))
			}
		}
	}
	return expr
}
