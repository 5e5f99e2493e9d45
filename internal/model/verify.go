package model

import (
	"schedulecreator/internal/catalog"
)

// verify re-checks a decoded timetable against the catalog, independently of
// the MILP encoding:
//   - each class row's assigned cells sum to its slot count,
//   - each row's assignment is a single contiguous run,
//   - no run starts too close to a day's end to fit within the day,
//   - no teacher is active in two classes during the same slot (across
//     semesters),
//   - per slot, at most one class is active among the common group plus any
//     single elective track.
func verify(timetable *Timetable, cat *catalog.Catalog) bool {
	for _, semesterTimetable := range timetable.Semesters {
		if !verifyRows(semesterTimetable, cat.Calendar) {
			return false
		}
		if !verifyGroupExclusivity(semesterTimetable, cat.Calendar) {
			return false
		}
	}
	return verifyTeacherOccupancy(timetable, cat)
}

func verifyRows(semesterTimetable SemesterTimetable, calendar *catalog.Calendar) bool {
	for i, class := range semesterTimetable.Semester.Classes {
		assigned := make([]int, 0, class.SlotCount)
		for j, value := range semesterTimetable.Values[i] {
			if isAssigned(value) {
				assigned = append(assigned, j)
			}
		}

		if len(assigned) != class.SlotCount {
			return false
		}
		for offset := 1; offset < len(assigned); offset++ {
			if assigned[offset] != assigned[0]+offset {
				return false
			}
		}
		if !calendar.LegalWindowStart(assigned[0], class.SlotCount) {
			return false
		}
	}
	return true
}

func verifyGroupExclusivity(semesterTimetable SemesterTimetable, calendar *catalog.Calendar) bool {
	semester := semesterTimetable.Semester

	for j := 0; j < calendar.TotalSlots(); j++ {
		commonActive := 0
		for i := range semester.CommonGroup().Classes {
			if isAssigned(semesterTimetable.Values[i][j]) {
				commonActive++
			}
		}

		if len(semester.NonCommonGroups()) == 0 {
			if commonActive > 1 {
				return false
			}
			continue
		}

		offset := len(semester.CommonGroup().Classes)
		for _, group := range semester.NonCommonGroups() {
			groupActive := 0
			for i := range group.Classes {
				if isAssigned(semesterTimetable.Values[offset+i][j]) {
					groupActive++
				}
			}
			if commonActive+groupActive > 1 {
				return false
			}
			offset += len(group.Classes)
		}
	}
	return true
}

func verifyTeacherOccupancy(timetable *Timetable, cat *catalog.Catalog) bool {
	for _, teacher := range cat.SortedTeachers() {
		for j := 0; j < cat.Calendar.TotalSlots(); j++ {
			active := 0
			for _, semesterTimetable := range timetable.Semesters {
				for i, class := range semesterTimetable.Semester.Classes {
					if class.ContainsTeacher(teacher) && isAssigned(semesterTimetable.Values[i][j]) {
						active++
					}
				}
			}
			if active > 1 {
				return false
			}
		}
	}
	return true
}
