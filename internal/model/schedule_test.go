package model

import (
	"fmt"
	"testing"

	"github.com/onsi/gomega"

	"schedulecreator/internal/catalog"
	"schedulecreator/internal/milp"
)

// solutionFor builds an optimal Solution assigning the given slot indices to
// the given rows of the model's matrix.
func solutionFor(model *SemesterModel, assignments map[int][]int) *milp.Solution {
	values := make(map[string]float64)
	for row, slots := range assignments {
		for _, slot := range slots {
			values[fmt.Sprintf("s%v_x%v_%v", model.Semester().Id, row, slot)] = 1
		}
	}
	return milp.NewSolution(milp.StatusOptimal, 0, values)
}

func TestExtractSchedulesRoundTrip(t *testing.T) {
	//** Arrange
	g := gomega.NewWithT(t)
	cat := testCatalog(t,
		[]catalog.RawTeacher{{Id: 1, LastName: "Doe", SlotPreferences: neutralPreferences(10)}},
		[]catalog.RawClass{
			{Id: 1, Name: "Algebra", Semester: "S1", SlotCount: 3, Teachers: []uint64{1}},
		},
		10, 1,
	)
	model, err := NewSemesterModel(milp.NewProblem("test"), cat.Semesters[0], cat.Calendar)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	solution := solutionFor(model, map[int][]int{0: {3, 4, 5}})

	//** Act
	schedules, values, err := extractSchedules(model, solution, cat.Slots)

	//** Assert
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(schedules).To(gomega.HaveLen(1))
	g.Expect(schedules[0].StartSlot).To(gomega.Equal(cat.Slots[3]))
	g.Expect(schedules[0].EndSlot).To(gomega.Equal(cat.Slots[5]))
	g.Expect(values[0][3]).To(gomega.Equal(1.0))
	g.Expect(values[0][2]).To(gomega.Equal(0.0))
}

func TestExtractSchedulesRunAtRowEnd(t *testing.T) {
	g := gomega.NewWithT(t)
	cat := testCatalog(t,
		[]catalog.RawTeacher{{Id: 1, LastName: "Doe", SlotPreferences: neutralPreferences(10)}},
		[]catalog.RawClass{
			{Id: 1, Name: "Algebra", Semester: "S1", SlotCount: 2, Teachers: []uint64{1}},
		},
		10, 1,
	)
	model, err := NewSemesterModel(milp.NewProblem("test"), cat.Semesters[0], cat.Calendar)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	// The run closes at the last slot of the calendar
	solution := solutionFor(model, map[int][]int{0: {8, 9}})

	schedules, _, err := extractSchedules(model, solution, cat.Slots)

	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(schedules[0].StartSlot).To(gomega.Equal(cat.Slots[8]))
	g.Expect(schedules[0].EndSlot).To(gomega.Equal(cat.Slots[9]))
}

func TestExtractSchedulesToleratesSolverNoise(t *testing.T) {
	g := gomega.NewWithT(t)
	cat := testCatalog(t,
		[]catalog.RawTeacher{{Id: 1, LastName: "Doe", SlotPreferences: neutralPreferences(10)}},
		[]catalog.RawClass{
			{Id: 1, Name: "Algebra", Semester: "S1", SlotCount: 2, Teachers: []uint64{1}},
		},
		10, 1,
	)
	model, err := NewSemesterModel(milp.NewProblem("test"), cat.Semesters[0], cat.Calendar)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	values := map[string]float64{
		"s1_x0_5": 0.9999999,
		"s1_x0_6": 1.0000001,
		"s1_x0_7": 0.0000001, // Effectively zero
	}
	solution := milp.NewSolution(milp.StatusOptimal, 0, values)

	schedules, _, err := extractSchedules(model, solution, cat.Slots)

	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(schedules[0].StartSlot).To(gomega.Equal(cat.Slots[5]))
	g.Expect(schedules[0].EndSlot).To(gomega.Equal(cat.Slots[6]))
}

func TestExtractSchedulesSortsByStartSlot(t *testing.T) {
	g := gomega.NewWithT(t)
	cat := testCatalog(t,
		[]catalog.RawTeacher{{Id: 1, LastName: "Doe", SlotPreferences: neutralPreferences(10)}},
		[]catalog.RawClass{
			{Id: 1, Name: "Algebra", Semester: "S1", SlotCount: 2, Teachers: []uint64{1}},
			{Id: 2, Name: "Biology", Semester: "S1", SlotCount: 2, Teachers: []uint64{1}},
		},
		10, 1,
	)
	model, err := NewSemesterModel(milp.NewProblem("test"), cat.Semesters[0], cat.Calendar)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	// Biology (row 1) runs before Algebra (row 0)
	solution := solutionFor(model, map[int][]int{0: {6, 7}, 1: {0, 1}})

	schedules, _, err := extractSchedules(model, solution, cat.Slots)

	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(schedules[0].Class.Name).To(gomega.Equal("Biology"))
	g.Expect(schedules[1].Class.Name).To(gomega.Equal("Algebra"))
}

func TestExtractSchedulesAnomalies(t *testing.T) {
	g := gomega.NewWithT(t)
	cat := testCatalog(t,
		[]catalog.RawTeacher{{Id: 1, LastName: "Doe", SlotPreferences: neutralPreferences(10)}},
		[]catalog.RawClass{
			{Id: 1, Name: "Algebra", Semester: "S1", SlotCount: 2, Teachers: []uint64{1}},
		},
		10, 1,
	)
	model, err := NewSemesterModel(milp.NewProblem("test"), cat.Semesters[0], cat.Calendar)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	t.Run("A split allocation is surfaced, not repaired", func(t *testing.T) {
		solution := solutionFor(model, map[int][]int{0: {1, 2, 5, 6}})

		_, _, err := extractSchedules(model, solution, cat.Slots)
		g.Expect(err).To(gomega.HaveOccurred())
	})

	t.Run("An empty row is surfaced", func(t *testing.T) {
		solution := solutionFor(model, map[int][]int{})

		_, _, err := extractSchedules(model, solution, cat.Slots)
		g.Expect(err).To(gomega.HaveOccurred())
	})
}

func TestClassScheduleString(t *testing.T) {
	g := gomega.NewWithT(t)

	schedule := ClassSchedule{
		Class: &catalog.Class{Name: "Algebra", GroupName: "A", SlotCount: 2},
		StartSlot: &catalog.Slot{
			Weekday:   2,
			StartTime: "08:00",
		},
		EndSlot: &catalog.Slot{
			Weekday: 2,
			EndTime: "09:50",
		},
	}

	rendered := schedule.String()
	g.Expect(rendered).To(gomega.ContainSubstring("Tuesday"))
	g.Expect(rendered).To(gomega.ContainSubstring("08:00 - 09:50"))
	g.Expect(rendered).To(gomega.ContainSubstring("2 hours"))
	g.Expect(rendered).To(gomega.ContainSubstring("[A] Algebra"))
}
