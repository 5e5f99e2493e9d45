package model

import (
	"testing"

	"schedulecreator/internal/catalog"
	"schedulecreator/internal/config"
)

// testCatalog builds a frozen catalog for the given classes. Slots get
// 1-based ids and weekdays derived from their day.
func testCatalog(t *testing.T, teachers []catalog.RawTeacher, classes []catalog.RawClass, totalSlots, classDays int) *catalog.Catalog {
	t.Helper()

	slotsPerDay := totalSlots / classDays
	slots := make([]catalog.RawSlot, 0, totalSlots)
	for i := 0; i < totalSlots; i++ {
		slots = append(slots, catalog.RawSlot{
			Id:        uint64(i + 1),
			Weekday:   i/slotsPerDay + 1,
			StartTime: "08:00",
			EndTime:   "08:50",
		})
	}

	cat, err := catalog.NewCatalog(catalog.RawCatalog{
		Teachers: teachers,
		Classes:  classes,
		Slots:    slots,
	}, classDays)
	if err != nil {
		t.Fatalf("cannot build test catalog: %v", err)
	}
	return cat
}

func neutralPreferences(n int) []int {
	return make([]int, n)
}

func testCoefficients(t *testing.T) config.Coefficients {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("cannot load default config: %v", err)
	}
	return cfg.Coefficients
}
