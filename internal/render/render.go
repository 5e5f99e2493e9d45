// Package render turns solved timetables into the console views consumed by
// the CLI: a per-semester assignment grid, per-class itineraries and a
// teacher-preference sheet.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"schedulecreator/internal/catalog"
	"schedulecreator/internal/model"
)

const assignmentThreshold = 0.5

func divider(cat *catalog.Catalog, c string) string {
	return strings.Repeat(c, len(cat.Slots)*2+11)
}

// gridHeader renders the weekday and within-day slot-number rows shared by
// the matrix grid and the preference sheet.
func gridHeader(cat *catalog.Catalog) string {
	var builder strings.Builder
	slotsPerDay := cat.Calendar.SlotsPerDay()

	builder.WriteString(divider(cat, "-") + "\n")

	builder.WriteString("| ")
	for i, slot := range cat.Slots {
		fmt.Fprintf(&builder, "%v ", slot.Weekday)
		if (i+1)%slotsPerDay == 0 {
			builder.WriteString("| ")
		}
	}
	builder.WriteString("<= Weekday\n")

	builder.WriteString("| ")
	for i := range cat.Slots {
		fmt.Fprintf(&builder, "%v ", i%slotsPerDay+1)
		if (i+1)%slotsPerDay == 0 {
			builder.WriteString("| ")
		}
	}
	builder.WriteString("<= Slot of day\n")

	builder.WriteString(divider(cat, "-") + "\n")
	return builder.String()
}

// MatrixGrid renders one semester's solved assignment matrix, one class row
// per line with its summary (slot-count check, id, duration, group, name and
// sorted teacher last names).
func MatrixGrid(semesterTimetable model.SemesterTimetable, cat *catalog.Catalog) string {
	var builder strings.Builder
	slotsPerDay := cat.Calendar.SlotsPerDay()

	builder.WriteString(gridHeader(cat))

	for i, class := range semesterTimetable.Semester.Classes {
		builder.WriteString("| ")

		assignedCount := 0
		for j, value := range semesterTimetable.Values[i] {
			if value < assignmentThreshold {
				if cat.Slots[j].IsLunchBreak {
					builder.WriteString("  ")
				} else {
					builder.WriteString("· ")
				}
			} else {
				builder.WriteString("x ")
				assignedCount++
			}

			if (j+1)%slotsPerDay == 0 {
				builder.WriteString("| ")
			}
		}

		check := "OK"
		if assignedCount != class.SlotCount {
			check = "!!"
		}
		groupName := ""
		if class.GroupName != "" {
			groupName = fmt.Sprintf("[%v] ", class.GroupName)
		}
		teachers := lo.Map(class.Teachers, func(teacher *catalog.Teacher, _ int) string { return teacher.LastName })
		sort.Strings(teachers)

		fmt.Fprintf(&builder, "-- %v #%-2v [%v h] %v%v (%v)\n", check, class.Id, class.SlotCount, groupName, class.Name, strings.Join(teachers, ", "))
	}

	builder.WriteString(divider(cat, "-") + "\n")
	return builder.String()
}

// Itinerary renders a semester's decoded blocks, one line per class.
func Itinerary(schedules []model.ClassSchedule) string {
	var builder strings.Builder
	for _, schedule := range schedules {
		builder.WriteString(schedule.String() + "\n")
	}
	return builder.String()
}

// TeacherPreferences renders every teacher's per-slot preference codes with
// a legend, teachers sorted by last name.
func TeacherPreferences(cat *catalog.Catalog) string {
	var builder strings.Builder
	slotsPerDay := cat.Calendar.SlotsPerDay()

	builder.WriteString(gridHeader(cat))

	teachers := cat.SortedTeachers()
	sort.SliceStable(teachers, func(i, j int) bool { return teachers[i].LastName < teachers[j].LastName })

	for _, teacher := range teachers {
		builder.WriteString("| ")
		for i, preference := range teacher.SlotPreferences {
			switch preference {
			case catalog.PreferenceUnset:
				builder.WriteString("  ")
			case catalog.PreferenceNeutral:
				builder.WriteString("· ")
			default:
				fmt.Fprintf(&builder, "%v ", int(preference))
			}

			if (i+1)%slotsPerDay == 0 {
				builder.WriteString("| ")
			}
		}
		fmt.Fprintf(&builder, "-- %v %v\n", teacher.LastName, teacher.FirstName)
	}

	builder.WriteString(divider(cat, "-") + "\n")
	builder.WriteString("5 = Strong preference\n")
	builder.WriteString("4 = Ideally yes\n")
	builder.WriteString("· = Neutral\n")
	builder.WriteString("3 = Preferably not\n")
	builder.WriteString("2 = If not otherwise possible\n")
	builder.WriteString("1 = Not available\n")
	return builder.String()
}

// Results renders the full run output: every semester's grid and itinerary
// followed by the teacher-preference sheet.
func Results(timetable *model.Timetable, cat *catalog.Catalog) string {
	var builder strings.Builder

	for _, semesterTimetable := range timetable.Semesters {
		builder.WriteString(divider(cat, "*") + "\n")
		builder.WriteString(semesterTimetable.Semester.Name + "\n")
		builder.WriteString(divider(cat, "*") + "\n\n")

		builder.WriteString(MatrixGrid(semesterTimetable, cat))
		builder.WriteString(Itinerary(semesterTimetable.Schedules))
		builder.WriteString("\n")
	}

	builder.WriteString(divider(cat, "*") + "\n")
	builder.WriteString("\nTeacher preferences:\n")
	builder.WriteString(TeacherPreferences(cat))
	return builder.String()
}
