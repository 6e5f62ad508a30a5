// Package openinghours decide se a loja está aberta em um determinado
// instante a partir de uma grade semanal de horários em texto livre
// (dias em português, períodos no formato "08:00-12:00 / 14:00-18:00").
package openinghours

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Entry is one row of the weekly schedule. Day is a free-text weekday
// label in Portuguese ("segunda", "Segunda-feira", "sábado"...), Hours
// holds one or more periods separated by "/", and IsOpen forces the day
// closed when false regardless of the hours text.
type Entry struct {
	Day    string `json:"day"`
	Hours  string `json:"hours"`
	IsOpen bool   `json:"isOpen"`
}

// Schedule is an ordered weekly schedule, at most one entry per weekday.
// When more than one entry resolves to the same weekday, the first one
// in iteration order wins.
type Schedule []Entry

// dayIndex maps the accepted weekday labels to calendar weekday indexes
// (0=Sunday .. 6=Saturday). Labels with and without diacritics and with
// and without the "-feira" suffix are accepted; nothing else is.
var dayIndex = map[string]int{
	"domingo":       0,
	"segunda":       1,
	"segunda-feira": 1,
	"terça":         2,
	"terça-feira":   2,
	"terca":         2,
	"terca-feira":   2,
	"quarta":        3,
	"quarta-feira":  3,
	"quinta":        4,
	"quinta-feira":  4,
	"sexta":         5,
	"sexta-feira":   5,
	"sábado":        6,
	"sabado":        6,
}

// ResolveDayIndex maps a weekday label to its calendar index
// (0=Sunday .. 6=Saturday). The label is lower-cased and trimmed before
// lookup. Unknown labels return ok=false; there is no fuzzy matching.
func ResolveDayIndex(label string) (int, bool) {
	idx, ok := dayIndex[strings.ToLower(strings.TrimSpace(label))]
	return idx, ok
}

// rangeSep splits a period into its start and end times. Accepted
// separators are runs of "-" or "–" and the word "às", with optional
// surrounding whitespace.
var rangeSep = regexp.MustCompile(`\s*(?:às|[-–]+)\s*`)

// parseClock parses an "HH:MM" token into minutes from midnight. The
// colon is required; a missing minute component after the colon counts
// as zero.
func parseClock(s string) (int, bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return 0, false
	}
	minute := 0
	if mm = strings.TrimSpace(mm); mm != "" {
		minute, err = strconv.Atoi(mm)
		if err != nil {
			return 0, false
		}
	}
	return hour*60 + minute, true
}

// withinRange reports whether nowMinutes (minutes from midnight) falls
// inside the textual period. Malformed periods never match. Same-day
// ranges are inclusive on both ends; a range whose end is not after its
// start wraps past midnight, so "22:00-02:00" covers late night and
// early morning. A range with start == end matches the whole day.
func withinRange(nowMinutes int, rangeText string) bool {
	var bounds []string
	for _, part := range rangeSep.Split(rangeText, -1) {
		if part = strings.TrimSpace(part); part != "" {
			bounds = append(bounds, part)
		}
	}
	if len(bounds) < 2 {
		return false
	}

	start, ok := parseClock(bounds[0])
	if !ok {
		return false
	}
	end, ok := parseClock(bounds[1])
	if !ok {
		return false
	}

	if end > start {
		return start <= nowMinutes && nowMinutes <= end
	}
	return nowMinutes >= start || nowMinutes <= end
}

// IsOpenAt reports whether the store is open at the given instant.
//
// An empty schedule means the store never configured opening hours and
// is treated as always open. Once a schedule exists the policy flips to
// fail closed: a day without an entry, an entry with IsOpen=false, an
// unrecognized day label or an unparseable period all count as closed.
func (s Schedule) IsOpenAt(now time.Time) bool {
	if len(s) == 0 {
		return true
	}

	today := int(now.Weekday())
	nowMinutes := now.Hour()*60 + now.Minute()

	for _, entry := range s {
		day, ok := ResolveDayIndex(entry.Day)
		if !ok || day != today {
			continue
		}
		if !entry.IsOpen {
			return false
		}
		for _, period := range strings.Split(entry.Hours, "/") {
			if period = strings.TrimSpace(period); period == "" {
				continue
			}
			if withinRange(nowMinutes, period) {
				return true
			}
		}
		return false
	}
	return false
}

// IsOpenNow evaluates the schedule against the local wall clock.
// Callers that need a specific timezone should shift the instant
// themselves and use IsOpenAt.
func (s Schedule) IsOpenNow() bool {
	return s.IsOpenAt(time.Now())
}
