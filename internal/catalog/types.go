package catalog

// SlotPreference is a teacher's per-slot desirability rating. The numeric
// values follow the input data format; PreferenceUnset marks slots the
// teacher expressed no opinion about and is excluded from the objective.
type SlotPreference int

const (
	PreferenceUnset                  SlotPreference = -1
	PreferenceNeutral                SlotPreference = 0
	PreferenceNotAvailable           SlotPreference = 1
	PreferenceIfNotOtherwisePossible SlotPreference = 2
	PreferencePreferablyNot          SlotPreference = 3
	PreferenceIdeallyYes             SlotPreference = 4
	PreferenceStrongPreference       SlotPreference = 5
)

type Slot struct {
	Id           uint64
	Weekday      int // 1..5
	StartTime    string
	EndTime      string
	IsLunchBreak bool
	IsEvening    bool
}

type Teacher struct {
	Id              uint64
	LastName        string
	FirstName       string
	SlotPreferences []SlotPreference // aligned 1:1 with the slot calendar
}

type Class struct {
	Id        uint64
	Name      string
	GroupName string
	SlotCount int
	Teachers  []*Teacher
}

func (class *Class) ContainsTeacher(teacher *Teacher) bool {
	for _, candidate := range class.Teachers {
		if candidate.Id == teacher.Id {
			return true
		}
	}
	return false
}

// Group is a named bucket of classes within a semester. The group with an
// empty name holds the classes shared by every student of the semester; all
// other groups are mutually exclusive elective tracks.
type Group struct {
	Name    string
	Classes []*Class
}

func (group *Group) IsCommon() bool {
	return group.Name == ""
}

type Semester struct {
	Id     uint64
	Name   string
	Groups []*Group // common group first, remaining groups sorted by name
	// Classes is the frozen concatenation of each group's classes; every
	// variable matrix row order is derived from it.
	Classes []*Class
}

func (semester *Semester) CommonGroup() *Group {
	return semester.Groups[0]
}

func (semester *Semester) NonCommonGroups() []*Group {
	return semester.Groups[1:]
}
