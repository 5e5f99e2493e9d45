package catalog

import "fmt"

const (
	// The lunch break is always the 5th slot of the day.
	lunchBreakOffset = 4
	// Evening slots always start from the 10th slot of the day.
	eveningStartOffset = 9
)

// Calendar centralizes every piece of raw slot-index arithmetic: how many
// slots a day holds, which offsets within a day are lunch/evening/first-hour,
// and whether a contiguous window of a given length fits inside a single day.
type Calendar struct {
	totalSlots  int
	classDays   int
	slotsPerDay int
}

func NewCalendar(totalSlots, classDays int) (*Calendar, error) {
	if classDays <= 0 {
		return nil, fmt.Errorf("number of class days must be positive: %v", classDays)
	}
	if totalSlots <= 0 || totalSlots%classDays != 0 {
		return nil, fmt.Errorf("total slot count %v is not divisible by %v class days", totalSlots, classDays)
	}
	return &Calendar{
		totalSlots:  totalSlots,
		classDays:   classDays,
		slotsPerDay: totalSlots / classDays,
	}, nil
}

func (calendar *Calendar) TotalSlots() int {
	return calendar.totalSlots
}

func (calendar *Calendar) ClassDays() int {
	return calendar.classDays
}

func (calendar *Calendar) SlotsPerDay() int {
	return calendar.slotsPerDay
}

func (calendar *Calendar) IsLunchBreak(index int) bool {
	return index%calendar.slotsPerDay == lunchBreakOffset
}

func (calendar *Calendar) IsEvening(index int) bool {
	return index%calendar.slotsPerDay >= eveningStartOffset
}

func (calendar *Calendar) IsFirstHour(index int) bool {
	return index%calendar.slotsPerDay == 0
}

// DayStart returns the index of the first slot of the given day (0-based).
func (calendar *Calendar) DayStart(day int) int {
	return day * calendar.slotsPerDay
}

// LegalWindowStart reports whether a contiguous run of the given length
// starting at the given slot index stays within a single day. A run that
// starts too close to the day's end would wrap into the next day, which is
// never a valid allocation.
func (calendar *Calendar) LegalWindowStart(start, length int) bool {
	return start%calendar.slotsPerDay <= calendar.slotsPerDay-length
}
