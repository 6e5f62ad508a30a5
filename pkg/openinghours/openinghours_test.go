package openinghours

import (
	"testing"
	"time"
)

// 2024-06-02 is a Sunday; the rest of that week follows.
func clock(weekday, hour, minute int) time.Time {
	return time.Date(2024, 6, 2+weekday, hour, minute, 0, 0, time.UTC)
}

func TestResolveDayIndex(t *testing.T) {
	tests := []struct {
		label string
		index int
		ok    bool
	}{
		{"domingo", 0, true},
		{"segunda", 1, true},
		{"segunda-feira", 1, true},
		{"Segunda-Feira", 1, true},
		{"  SEXTA  ", 5, true},
		{"terça", 2, true},
		{"terca", 2, true},
		{"terca-feira", 2, true},
		{"quarta-feira", 3, true},
		{"quinta", 4, true},
		{"sábado", 6, true},
		{"sabado", 6, true},
		{"funday", 0, false},
		{"", 0, false},
		{"segunda feira", 0, false},
		{"seg", 0, false},
	}

	for _, test := range tests {
		index, ok := ResolveDayIndex(test.label)
		if ok != test.ok {
			t.Errorf("ResolveDayIndex(%q) ok = %v, expected %v", test.label, ok, test.ok)
			continue
		}
		if ok && index != test.index {
			t.Errorf("ResolveDayIndex(%q) = %d, expected %d", test.label, index, test.index)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"08:00", 480, true},
		{"08:30", 510, true},
		{"0:05", 5, true},
		{"23:59", 1439, true},
		{"08:", 480, true}, // missing minutes default to zero
		{" 10 : 15 ", 615, true},
		{"08", 0, false}, // no colon
		{"ab:00", 0, false},
		{"08:xx", 0, false},
		{"", 0, false},
		{"garbage", 0, false},
	}

	for _, test := range tests {
		minutes, ok := parseClock(test.input)
		if ok != test.ok {
			t.Errorf("parseClock(%q) ok = %v, expected %v", test.input, ok, test.ok)
			continue
		}
		if ok && minutes != test.minutes {
			t.Errorf("parseClock(%q) = %d, expected %d", test.input, minutes, test.minutes)
		}
	}
}

func TestWithinRange(t *testing.T) {
	tests := []struct {
		name     string
		now      int // minutes from midnight
		period   string
		expected bool
	}{
		{"same-day inside", 12 * 60, "08:00-22:00", true},
		{"same-day start boundary", 8 * 60, "08:00-22:00", true},
		{"same-day end boundary", 22 * 60, "08:00-22:00", true},
		{"same-day before start", 7*60 + 59, "08:00-22:00", false},
		{"same-day after end", 22*60 + 1, "08:00-22:00", false},
		{"en dash separator", 12 * 60, "08:00 – 22:00", true},
		{"às separator", 12 * 60, "08:00 às 22:00", true},
		{"double dash separator", 12 * 60, "08:00--22:00", true},
		{"overnight late night", 23*60 + 30, "22:00-02:00", true},
		{"overnight early morning", 1 * 60, "22:00-02:00", true},
		{"overnight daytime", 10 * 60, "22:00-02:00", false},
		{"degenerate start equals end", 10 * 60, "08:00-08:00", true},
		{"missing minutes tolerated", 9 * 60, "08:-10:", true},
		{"single token", 10 * 60, "08:00", false},
		{"garbage", 10 * 60, "garbage", false},
		{"empty", 10 * 60, "", false},
		{"only separator", 10 * 60, " - ", false},
		{"non-numeric bound", 10 * 60, "ab:cd-10:00", false},
	}

	for _, test := range tests {
		if got := withinRange(test.now, test.period); got != test.expected {
			t.Errorf("%s: withinRange(%d, %q) = %v, expected %v", test.name, test.now, test.period, got, test.expected)
		}
	}
}

func TestIsOpenAtEmptySchedule(t *testing.T) {
	if !(Schedule{}).IsOpenAt(clock(3, 12, 0)) {
		t.Error("empty schedule should be treated as always open")
	}
	var nilSchedule Schedule
	if !nilSchedule.IsOpenAt(clock(3, 12, 0)) {
		t.Error("nil schedule should be treated as always open")
	}
}

func TestIsOpenAtNoEntryForToday(t *testing.T) {
	schedule := Schedule{
		{Day: "segunda", Hours: "08:00-18:00", IsOpen: true},
	}
	// Sunday: schedule exists but has no entry for today.
	if schedule.IsOpenAt(clock(0, 12, 0)) {
		t.Error("day without a schedule entry should be closed")
	}
}

func TestIsOpenAtClosedFlag(t *testing.T) {
	open := Schedule{{Day: "domingo", Hours: "00:00-23:59", IsOpen: true}}
	closed := Schedule{{Day: "domingo", Hours: "00:00-23:59", IsOpen: false}}

	sunday := clock(0, 12, 0)
	if !open.IsOpenAt(sunday) {
		t.Error("enabled sunday entry should be open at noon")
	}
	if closed.IsOpenAt(sunday) {
		t.Error("IsOpen=false must force closed regardless of hours")
	}
}

func TestIsOpenAtMultiPeriodDay(t *testing.T) {
	schedule := Schedule{
		{Day: "quarta", Hours: "08:00-12:00 / 14:00-18:00", IsOpen: true},
	}

	tests := []struct {
		hour, minute int
		expected     bool
	}{
		{7, 59, false},
		{8, 0, true},
		{12, 0, true},
		{13, 0, false}, // lunch break
		{15, 0, true},
		{18, 0, true},
		{18, 1, false},
	}

	for _, test := range tests {
		now := clock(3, test.hour, test.minute)
		if got := schedule.IsOpenAt(now); got != test.expected {
			t.Errorf("IsOpenAt(%02d:%02d) = %v, expected %v", test.hour, test.minute, got, test.expected)
		}
	}
}

func TestIsOpenAtOvernightRange(t *testing.T) {
	schedule := Schedule{
		{Day: "sexta", Hours: "22:00-02:00", IsOpen: true},
	}

	if !schedule.IsOpenAt(clock(5, 23, 30)) {
		t.Error("23:30 should be inside 22:00-02:00")
	}
	if !schedule.IsOpenAt(clock(5, 1, 0)) {
		t.Error("01:00 should be inside 22:00-02:00")
	}
	if schedule.IsOpenAt(clock(5, 10, 0)) {
		t.Error("10:00 should be outside 22:00-02:00")
	}
}

func TestIsOpenAtFirstMatchWins(t *testing.T) {
	schedule := Schedule{
		{Day: "domingo", Hours: "08:00-12:00", IsOpen: true},
		{Day: "Domingo", Hours: "00:00-23:59", IsOpen: true},
	}

	if schedule.IsOpenAt(clock(0, 15, 0)) {
		t.Error("second entry for the same weekday should be ignored")
	}
	if !schedule.IsOpenAt(clock(0, 10, 0)) {
		t.Error("first entry for the weekday should decide")
	}
}

func TestIsOpenAtSkipsUnknownDays(t *testing.T) {
	schedule := Schedule{
		{Day: "funday", Hours: "00:00-23:59", IsOpen: true},
		{Day: "domingo", Hours: "08:00-12:00", IsOpen: true},
	}

	if !schedule.IsOpenAt(clock(0, 10, 0)) {
		t.Error("unknown day labels should be skipped, not matched")
	}
	if schedule.IsOpenAt(clock(0, 15, 0)) {
		t.Error("unknown day labels must not count as an entry for today")
	}
}

func TestIsOpenAtMalformedHours(t *testing.T) {
	tests := []struct {
		name  string
		hours string
	}{
		{"garbage", "garbage"},
		{"empty", ""},
		{"only slashes", " / / "},
		{"single time", "08:00"},
		{"non-numeric", "aa:bb-cc:dd"},
	}

	sunday := clock(0, 12, 0)
	for _, test := range tests {
		schedule := Schedule{{Day: "domingo", Hours: test.hours, IsOpen: true}}
		if schedule.IsOpenAt(sunday) {
			t.Errorf("%s: malformed hours %q should evaluate as closed", test.name, test.hours)
		}
	}
}

func TestIsOpenAtMixedMalformedAndValidPeriods(t *testing.T) {
	schedule := Schedule{
		{Day: "domingo", Hours: "garbage / 10:00-14:00", IsOpen: true},
	}

	if !schedule.IsOpenAt(clock(0, 12, 0)) {
		t.Error("a valid period should match even next to a malformed one")
	}
	if schedule.IsOpenAt(clock(0, 15, 0)) {
		t.Error("the malformed period must never match")
	}
}
