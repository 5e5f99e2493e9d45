package catalog

import (
	"fmt"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTestData(t *testing.T, teachers, classes, slots string) string {
	t.Helper()
	directory := t.TempDir()

	for name, content := range map[string]string{
		teachersFile: teachers,
		classesFile:  classes,
		slotsFile:    slots,
	} {
		if err := os.WriteFile(path.Join(directory, name), []byte(content), 0666); err != nil {
			t.Fatalf("cannot write test file: %v", err)
		}
	}
	return directory
}

func testSlotRows(n int) string {
	var builder strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&builder, "%v;slot;%v;%02d:00;%02d:50\n", i+1, i/15+1, 8+i%15, 8+i%15)
	}
	return builder.String()
}

func TestFromCsv(t *testing.T) {
	//** Arrange
	// Two days of 15 slots each; every day's three preference codes expand
	// into blocks of 4, 4 and 6 slots with an unset lunch slot after the
	// first block.
	teachers := "1;Doe;John;0;1;2;3;4;5\n2;Roe;Jane;0;0;0;0;0;0\n"
	classes := "1;Algebra;S1;;2;[1]\n2;Biology;S1;A;3;[1, 2]\n"
	directory := writeTestData(t, teachers, classes, testSlotRows(30))

	//** Act
	cat, err := FromCsv(directory, 2)

	//** Assert
	assert.Nil(t, err)
	assert.Equal(t, 15, cat.Calendar.SlotsPerDay())

	doe := cat.Teachers[1]
	assert.Equal(t, "Doe", doe.LastName)
	assert.Len(t, doe.SlotPreferences, 30)

	// First day: code 0 over slots 0-3, unset lunch, code 1 over 5-8, code 2 over 9-14
	assert.Equal(t, PreferenceNeutral, doe.SlotPreferences[0])
	assert.Equal(t, PreferenceNeutral, doe.SlotPreferences[3])
	assert.Equal(t, PreferenceUnset, doe.SlotPreferences[4])
	assert.Equal(t, PreferenceNotAvailable, doe.SlotPreferences[5])
	assert.Equal(t, PreferenceNotAvailable, doe.SlotPreferences[8])
	assert.Equal(t, PreferenceIfNotOtherwisePossible, doe.SlotPreferences[9])
	assert.Equal(t, PreferenceIfNotOtherwisePossible, doe.SlotPreferences[14])

	// Second day: codes 3, 4, 5
	assert.Equal(t, PreferencePreferablyNot, doe.SlotPreferences[15])
	assert.Equal(t, PreferenceUnset, doe.SlotPreferences[19])
	assert.Equal(t, PreferenceIdeallyYes, doe.SlotPreferences[20])
	assert.Equal(t, PreferenceStrongPreference, doe.SlotPreferences[24])
	assert.Equal(t, PreferenceStrongPreference, doe.SlotPreferences[29])

	// Classes resolve their bracketed teacher lists
	assert.Len(t, cat.Semesters, 1)
	biology := cat.Semesters[0].Classes[1]
	assert.Equal(t, "Biology", biology.Name)
	assert.Equal(t, "A", biology.GroupName)
	assert.Len(t, biology.Teachers, 2)

	// Slot labels and flags
	assert.Equal(t, "08:00", cat.Slots[0].StartTime)
	assert.Equal(t, 1, cat.Slots[0].Weekday)
	assert.Equal(t, 2, cat.Slots[15].Weekday)
	assert.True(t, cat.Slots[4].IsLunchBreak)
}

func TestFromCsvMalformedRows(t *testing.T) {
	t.Run("Teacher row with a dangling preference code", func(t *testing.T) {
		directory := writeTestData(t, "1;Doe;John;0;1\n", "", testSlotRows(30))
		_, err := FromCsv(directory, 2)
		assert.NotNil(t, err)
	})

	t.Run("Class row with a malformed teacher list", func(t *testing.T) {
		directory := writeTestData(t, "1;Doe;John;0;1;2;3;4;5\n", "1;Algebra;S1;;2;1\n", testSlotRows(30))
		_, err := FromCsv(directory, 2)
		assert.NotNil(t, err)
	})

	t.Run("Slot row with too few fields", func(t *testing.T) {
		directory := writeTestData(t, "", "", "1;slot;1\n")
		_, err := FromCsv(directory, 1)
		assert.NotNil(t, err)
	})
}

func TestParseTeacherIds(t *testing.T) {
	scenarios := map[string][]uint64{
		"[1, 2]": {1, 2},
		"[3]":    {3},
		"[]":     {},
	}

	for list, expected := range scenarios {
		ids, err := parseTeacherIds(list)
		assert.Nil(t, err)
		assert.Equal(t, expected, ids)
	}

	_, err := parseTeacherIds("1, 2")
	assert.NotNil(t, err)
}
