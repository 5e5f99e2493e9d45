package model

import (
	"fmt"
	"math"
	"sort"

	"schedulecreator/internal/catalog"
	"schedulecreator/internal/milp"
)

// Solver outputs are floats expected to sit at 0 or 1; a cell counts as
// assigned when it lies within this tolerance of 1.
const assignmentTolerance = 1e-6

// ClassSchedule is one decoded contiguous block: the class occupies every
// slot from StartSlot through EndSlot.
type ClassSchedule struct {
	Class     *catalog.Class
	StartSlot *catalog.Slot
	EndSlot   *catalog.Slot
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (schedule ClassSchedule) String() string {
	groupName := ""
	if schedule.Class.GroupName != "" {
		groupName = fmt.Sprintf("[%v] ", schedule.Class.GroupName)
	}

	weekday := fmt.Sprintf("%-9v", weekdays[schedule.StartSlot.Weekday-1])
	timeRange := fmt.Sprintf("%v - %v", schedule.StartSlot.StartTime, schedule.EndSlot.EndTime)

	return fmt.Sprintf("%v   %v   %v hours   %v%v", weekday, timeRange, schedule.Class.SlotCount, groupName, schedule.Class.Name)
}

// extractSchedules decodes a semester's solved matrix into one contiguous
// block per class row, plus the raw cell values for grid rendering. A row
// that resolves to zero or several runs means the contiguity encoding did
// not behave as built, so it surfaces as an error instead of being repaired.
func extractSchedules(model *SemesterModel, solution *milp.Solution, slots []*catalog.Slot) ([]ClassSchedule, [][]float64, error) {
	values := make([][]float64, len(model.matrix))
	schedules := make([]ClassSchedule, 0, len(model.matrix))

	for i, class := range model.semester.Classes {
		values[i] = make([]float64, len(model.matrix[i]))

		runs := make([]ClassSchedule, 0, 1)
		runLength := 0
		for j := range model.matrix[i] {
			value := solution.Value(model.matrix[i][j])
			values[i][j] = value

			if isAssigned(value) {
				runLength++
			}
			if runLength > 0 && (!isAssigned(value) || j == len(model.matrix[i])-1) {
				end := j
				if !isAssigned(value) {
					end = j - 1
				}
				runs = append(runs, ClassSchedule{
					Class:     class,
					StartSlot: slots[end-runLength+1],
					EndSlot:   slots[end],
				})
				runLength = 0
			}
		}

		if len(runs) != 1 {
			return nil, nil, fmt.Errorf("class \"%v\" resolved to %v contiguous runs, want exactly 1", class.Name, len(runs))
		}
		schedules = append(schedules, runs[0])
	}

	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].StartSlot.Id < schedules[j].StartSlot.Id
	})
	return schedules, values, nil
}

func isAssigned(value float64) bool {
	return math.Abs(value-1) <= assignmentTolerance
}
