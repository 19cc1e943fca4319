package schedule

import (
	"strings"

	"golang.org/x/text/cases"
)

// Unit is the calendar unit an interval advances by.
type Unit int

const (
	Day Unit = iota
	Week
	Month
	Year
)

func (u Unit) String() string {
	switch u {
	case Day:
		return "day"
	case Week:
		return "week"
	case Year:
		return "year"
	default:
		return "month"
	}
}

// units maps the case folded spellings stored in the frequency catalog
// to their unit. English and Portuguese spellings are accepted.
var units = map[string]Unit{
	"day":     Day,
	"days":    Day,
	"dia":     Day,
	"dias":    Day,
	"week":    Week,
	"weeks":   Week,
	"semana":  Week,
	"semanas": Week,
	"month":   Month,
	"months":  Month,
	"mes":     Month,
	"mês":     Month,
	"meses":   Month,
	"year":    Year,
	"years":   Year,
	"ano":     Year,
	"anos":    Year,
}

// ParseUnit resolves a unit name case-insensitively.
//
// Unknown names resolve to Month with ok set to false so that callers
// can tell the fallback apart from an actual monthly interval.
func ParseUnit(s string) (unit Unit, ok bool) {
	unit, ok = units[cases.Fold().String(strings.TrimSpace(s))]
	if !ok {
		return Month, false
	}

	return unit, true
}
