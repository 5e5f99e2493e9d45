// Package model builds the timetable MILP — one binary variable per
// class-slot cell, five objective fragments and three constraint families
// per semester plus a cross-semester teacher constraint — and decodes the
// solved assignment matrix back into contiguous schedule blocks.
package model

import (
	"fmt"

	"schedulecreator/internal/catalog"
	"schedulecreator/internal/milp"
)

// SemesterModel owns one semester's decision-variable matrix: rows are the
// semester's classes in their frozen order, columns are the calendar slots.
// Cell (i, j) is 1 when class i occupies slot j.
type SemesterModel struct {
	semester *catalog.Semester
	calendar *catalog.Calendar
	matrix   [][]*milp.Variable
}

func NewSemesterModel(problem *milp.Problem, semester *catalog.Semester, calendar *catalog.Calendar) (*SemesterModel, error) {
	for _, class := range semester.Classes {
		if class.SlotCount < 1 || class.SlotCount > calendar.SlotsPerDay() {
			return nil, fmt.Errorf("class \"%v\" requires %v slots but a day only holds %v", class.Name, class.SlotCount, calendar.SlotsPerDay())
		}
	}

	matrix := make([][]*milp.Variable, len(semester.Classes))
	for i := range matrix {
		matrix[i] = make([]*milp.Variable, calendar.TotalSlots())
		for j := range matrix[i] {
			matrix[i][j] = problem.NewBinaryVariable(fmt.Sprintf("s%v_x%v_%v", semester.Id, i, j))
		}
	}

	return &SemesterModel{
		semester: semester,
		calendar: calendar,
		matrix:   matrix,
	}, nil
}

func (model *SemesterModel) Semester() *catalog.Semester {
	return model.semester
}

func (model *SemesterModel) Matrix() [][]*milp.Variable {
	return model.matrix
}
