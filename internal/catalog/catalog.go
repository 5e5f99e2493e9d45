package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type RawTeacher struct {
	Id              uint64
	LastName        string
	FirstName       string
	SlotPreferences []int // per-slot codes, -1 for unset
}

type RawClass struct {
	Id        uint64
	Name      string
	Semester  string
	GroupName string
	SlotCount int
	Teachers  []uint64
}

type RawSlot struct {
	Id        uint64
	Weekday   int
	StartTime string
	EndTime   string
}

type RawCatalog struct {
	Teachers []RawTeacher
	Classes  []RawClass
	Slots    []RawSlot
}

// Catalog is the process-wide reference data: teachers, semesters (each
// owning its frozen groups and class order) and the weekly slot calendar.
// It is built once at startup and read-only afterwards; every component that
// needs it receives it explicitly.
type Catalog struct {
	Teachers  map[uint64]*Teacher
	Semesters []*Semester
	Slots     []*Slot
	Calendar  *Calendar
}

func FromJson(file string, classDays int) (*Catalog, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var catalogJson map[string]any
	if err := json.Unmarshal(bytes, &catalogJson); err != nil {
		return nil, err
	}

	var raw RawCatalog
	if err := mapstructure.Decode(catalogJson, &raw); err != nil {
		return nil, err
	}
	return NewCatalog(raw, classDays)
}

func NewCatalog(raw RawCatalog, classDays int) (*Catalog, error) {
	calendar, err := NewCalendar(len(raw.Slots), classDays)
	if err != nil {
		return nil, err
	}

	slots := lo.Map(raw.Slots, func(rawSlot RawSlot, i int) *Slot {
		return &Slot{
			Id:           rawSlot.Id,
			Weekday:      rawSlot.Weekday,
			StartTime:    rawSlot.StartTime,
			EndTime:      rawSlot.EndTime,
			IsLunchBreak: calendar.IsLunchBreak(i),
			IsEvening:    calendar.IsEvening(i),
		}
	})

	teachers := make(map[uint64]*Teacher, len(raw.Teachers))
	for _, rawTeacher := range raw.Teachers {
		if len(rawTeacher.SlotPreferences) != len(slots) {
			return nil, fmt.Errorf("teacher \"%v %v\" has %v slot preferences for %v slots", rawTeacher.LastName, rawTeacher.FirstName, len(rawTeacher.SlotPreferences), len(slots))
		}
		preferences := make([]SlotPreference, 0, len(rawTeacher.SlotPreferences))
		for i, code := range rawTeacher.SlotPreferences {
			if code < int(PreferenceUnset) || code > int(PreferenceStrongPreference) {
				return nil, fmt.Errorf("teacher \"%v %v\" has an invalid preference code %v at slot %v", rawTeacher.LastName, rawTeacher.FirstName, code, i)
			}
			preferences = append(preferences, SlotPreference(code))
		}
		teachers[rawTeacher.Id] = &Teacher{
			Id:              rawTeacher.Id,
			LastName:        rawTeacher.LastName,
			FirstName:       rawTeacher.FirstName,
			SlotPreferences: preferences,
		}
	}

	semesters, err := buildSemesters(raw.Classes, teachers, calendar)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		Teachers:  teachers,
		Semesters: semesters,
		Slots:     slots,
		Calendar:  calendar,
	}, nil
}

// SortedTeachers returns the teachers ordered by id, for deterministic
// iteration over the teachers map.
func (catalog *Catalog) SortedTeachers() []*Teacher {
	teachers := lo.Values(catalog.Teachers)
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].Id < teachers[j].Id })
	return teachers
}

// buildSemesters buckets the raw classes into semesters in encounter order,
// resolves raw teacher ids into Teacher references and freezes each
// semester's group and class order.
func buildSemesters(rawClasses []RawClass, teachers map[uint64]*Teacher, calendar *Calendar) ([]*Semester, error) {
	semesters := make([]*Semester, 0)
	identifiers := make(map[string]int)

	for _, rawClass := range rawClasses {
		if _, ok := identifiers[rawClass.Semester]; !ok {
			identifiers[rawClass.Semester] = len(semesters)
			semesters = append(semesters, &Semester{
				Id:   uint64(len(semesters) + 1),
				Name: rawClass.Semester,
			})
		}
		semester := semesters[identifiers[rawClass.Semester]]

		if rawClass.SlotCount < 1 || rawClass.SlotCount > calendar.SlotsPerDay() {
			return nil, fmt.Errorf("class \"%v\" requires %v slots but a day only holds %v", rawClass.Name, rawClass.SlotCount, calendar.SlotsPerDay())
		}

		classTeachers := make([]*Teacher, 0, len(rawClass.Teachers))
		for _, teacherId := range rawClass.Teachers {
			teacher, ok := teachers[teacherId]
			if !ok {
				return nil, fmt.Errorf("class \"%v\" references unknown teacher %v", rawClass.Name, teacherId)
			}
			classTeachers = append(classTeachers, teacher)
		}

		semester.Classes = append(semester.Classes, &Class{
			Id:        rawClass.Id,
			Name:      rawClass.Name,
			GroupName: rawClass.GroupName,
			SlotCount: rawClass.SlotCount,
			Teachers:  classTeachers,
		})
	}

	for _, semester := range semesters {
		initGroups(semester)
	}
	return semesters, nil
}

// initGroups buckets a semester's classes by group name (the common group
// always exists and comes first, the rest are sorted by name), sorts each
// group's classes by name and freezes the semester's flattened class order.
func initGroups(semester *Semester) {
	groups := []*Group{{Name: ""}}
	identifiers := map[string]int{"": 0}

	for _, class := range semester.Classes {
		if _, ok := identifiers[class.GroupName]; !ok {
			identifiers[class.GroupName] = len(groups)
			groups = append(groups, &Group{Name: class.GroupName})
		}
		group := groups[identifiers[class.GroupName]]
		group.Classes = append(group.Classes, class)
	}

	sort.Slice(groups[1:], func(i, j int) bool { return groups[i+1].Name < groups[j+1].Name })

	semester.Groups = groups
	semester.Classes = semester.Classes[:0]
	for _, group := range groups {
		slices.SortFunc(group.Classes, func(a, b *Class) int {
			if a.Name < b.Name {
				return -1
			} else if a.Name > b.Name {
				return 1
			}
			return 0
		})
		semester.Classes = append(semester.Classes, group.Classes...)
	}
}
