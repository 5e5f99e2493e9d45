package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
)

// Reference data ships as three semicolon-delimited CSV files.
const (
	teachersFile = "Teachers.csv"
	classesFile  = "Classes.csv"
	slotsFile    = "Slots.csv"
)

// Per-day layout of the teacher preference blocks: each CSV code covers a
// block of slots, and the slot right after the first block (the lunch break)
// carries no preference.
var preferenceBlockLengths = []int{4, 4, 6}

// FromCsv loads the reference catalog from a directory holding the three
// CSV files and freezes it.
func FromCsv(directory string, classDays int) (*Catalog, error) {
	teachers, err := loadTeachers(path.Join(directory, teachersFile))
	if err != nil {
		return nil, err
	}
	classes, err := loadClasses(path.Join(directory, classesFile))
	if err != nil {
		return nil, err
	}
	slots, err := loadSlots(path.Join(directory, slotsFile))
	if err != nil {
		return nil, err
	}

	return NewCatalog(RawCatalog{
		Teachers: teachers,
		Classes:  classes,
		Slots:    slots,
	}, classDays)
}

func readCsv(file string) ([][]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1 // Teacher rows carry a variable number of preference columns
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse %v: %w", file, err)
	}
	return rows, nil
}

// loadTeachers reads Teachers.csv rows of the form
// id;lastName;firstName;code;code;... where every three codes describe one
// day and expand into per-slot preferences following preferenceBlockLengths.
func loadTeachers(file string) ([]RawTeacher, error) {
	rows, err := readCsv(file)
	if err != nil {
		return nil, err
	}

	teachers := make([]RawTeacher, 0, len(rows))
	for _, row := range rows {
		if len(row) < 4 || (len(row)-3)%len(preferenceBlockLengths) != 0 {
			return nil, fmt.Errorf("malformed teacher row: %v", row)
		}

		id, err := strconv.ParseUint(row[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid teacher id %q: %w", row[0], err)
		}

		preferences := make([]int, 0)
		for i, codeStr := range row[3:] {
			code, err := strconv.Atoi(codeStr)
			if err != nil {
				return nil, fmt.Errorf("invalid preference code %q for teacher %v: %w", codeStr, id, err)
			}

			block := i % len(preferenceBlockLengths)
			for n := 0; n < preferenceBlockLengths[block]; n++ {
				preferences = append(preferences, code)
			}
			if block == 0 {
				preferences = append(preferences, int(PreferenceUnset)) // lunch break slot
			}
		}

		teachers = append(teachers, RawTeacher{
			Id:              id,
			LastName:        row[1],
			FirstName:       row[2],
			SlotPreferences: preferences,
		})
	}
	return teachers, nil
}

// loadClasses reads Classes.csv rows of the form
// id;name;semester;group;slotCount;[teacherId, teacherId, ...].
func loadClasses(file string) ([]RawClass, error) {
	rows, err := readCsv(file)
	if err != nil {
		return nil, err
	}

	classes := make([]RawClass, 0, len(rows))
	for _, row := range rows {
		if len(row) != 6 {
			return nil, fmt.Errorf("malformed class row: %v", row)
		}

		id, err := strconv.ParseUint(row[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid class id %q: %w", row[0], err)
		}
		slotCount, err := strconv.Atoi(row[4])
		if err != nil {
			return nil, fmt.Errorf("invalid slot count %q for class %v: %w", row[4], id, err)
		}
		teachers, err := parseTeacherIds(row[5])
		if err != nil {
			return nil, fmt.Errorf("invalid teacher list for class %v: %w", id, err)
		}

		classes = append(classes, RawClass{
			Id:        id,
			Name:      row[1],
			Semester:  row[2],
			GroupName: row[3],
			SlotCount: slotCount,
			Teachers:  teachers,
		})
	}
	return classes, nil
}

// loadSlots reads Slots.csv rows of the form id;label;weekday;start;end.
func loadSlots(file string) ([]RawSlot, error) {
	rows, err := readCsv(file)
	if err != nil {
		return nil, err
	}

	slots := make([]RawSlot, 0, len(rows))
	for _, row := range rows {
		if len(row) != 5 {
			return nil, fmt.Errorf("malformed slot row: %v", row)
		}

		id, err := strconv.ParseUint(row[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid slot id %q: %w", row[0], err)
		}
		weekday, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("invalid weekday %q for slot %v: %w", row[2], id, err)
		}

		slots = append(slots, RawSlot{
			Id:        id,
			Weekday:   weekday,
			StartTime: row[3],
			EndTime:   row[4],
		})
	}
	return slots, nil
}

// parseTeacherIds parses a bracketed id list such as "[3, 7]".
func parseTeacherIds(list string) ([]uint64, error) {
	list = strings.TrimSpace(list)
	if !strings.HasPrefix(list, "[") || !strings.HasSuffix(list, "]") {
		return nil, fmt.Errorf("expected a bracketed list: %q", list)
	}
	list = strings.TrimSpace(list[1 : len(list)-1])
	if list == "" {
		return []uint64{}, nil
	}

	ids := make([]uint64, 0)
	for _, item := range strings.Split(list, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(item), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
