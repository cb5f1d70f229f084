package sankhya

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sankhya exchanges dates as DD/MM/YYYY and timestamps as DD/MM/YYYY HH:mm:ss,
// always in the ERP's local wall clock.
const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006 15:04:05"
)

var errUnparsableDate = errors.New("sankhya: unparsable date")

// localLayouts are tried in order for values that carry no zone information.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseLocal parses an ISO-8601 style date or date-time. Values with an explicit
// offset are converted to the local zone; values without one are read as local
// wall clock.
func ParseLocal(iso string) (time.Time, error) {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return time.Time{}, errUnparsableDate
	}
	if t, err := time.Parse(time.RFC3339Nano, iso); err == nil {
		return t.In(time.Local), nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, iso, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errUnparsableDate, iso)
}

// ToDate converts YYYY-MM-DD into DD/MM/YYYY. It returns "" for empty or
// unparsable input.
func ToDate(iso string) string {
	if iso == "" {
		return ""
	}
	datePart, _, _ := strings.Cut(strings.TrimSpace(iso), "T")
	t, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return ""
	}
	return t.Format(DateLayout)
}

// ToDateTime converts an ISO date-time into DD/MM/YYYY HH:mm:ss in the local
// zone. It returns "" for empty or unparsable input.
func ToDateTime(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := ParseLocal(iso)
	if err != nil {
		return ""
	}
	return t.Format(DateTimeLayout)
}

// FormatDateTime renders t in the vendor timestamp format using the local zone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(DateTimeLayout)
}

// FormatDate renders t in the vendor date format using the local zone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(DateLayout)
}

// FromDateTime converts DD/MM/YYYY[ HH:mm[:ss]] into YYYY-MM-DDTHH:mm:ss. The
// result intentionally has no zone designator so consumers read it as local wall
// clock instead of UTC. Missing time defaults to midnight. Malformed input yields "".
func FromDateTime(vendor string) string {
	vendor = strings.TrimSpace(vendor)
	if vendor == "" {
		return ""
	}

	datePart, timePart, hasTime := strings.Cut(vendor, " ")

	dmy := strings.Split(datePart, "/")
	if len(dmy) != 3 {
		return ""
	}
	day, ok := atoiInRange(dmy[0], 1, 31)
	if !ok {
		return ""
	}
	month, ok := atoiInRange(dmy[1], 1, 12)
	if !ok {
		return ""
	}
	year := strings.TrimSpace(dmy[2])
	if _, ok := atoiInRange(year, 0, 9999); !ok {
		return ""
	}

	hour, minute, second := 0, 0, 0
	if hasTime {
		hms := strings.Split(strings.TrimSpace(timePart), ":")
		if len(hms) < 2 || len(hms) > 3 {
			return ""
		}
		if hour, ok = atoiInRange(hms[0], 0, 23); !ok {
			return ""
		}
		if minute, ok = atoiInRange(hms[1], 0, 59); !ok {
			return ""
		}
		if len(hms) == 3 {
			// fractional seconds are dropped
			sec, _, _ := strings.Cut(hms[2], ".")
			if second, ok = atoiInRange(sec, 0, 59); !ok {
				return ""
			}
		}
	}

	return fmt.Sprintf("%s-%02d-%02dT%02d:%02d:%02d", year, month, day, hour, minute, second)
}

func atoiInRange(s string, min, max int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < min || n > max {
		return 0, false
	}
	return n, true
}
