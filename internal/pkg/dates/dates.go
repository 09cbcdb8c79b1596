// Package dates normalizes the timestamp shapes that reach the view layer
// into display strings. Stored records may surface native times, the
// store's wrapped timestamp type, or strings that were written by older
// clients; Format accepts all of them under a requested mode.
package dates

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Modes accepted by Format. Matching is exact and case-sensitive; any
// other string falls back to ModeShort.
const (
	ModeShort = "short"
	ModeDate  = "date"
	ModeTime  = "time"
	ModeFull  = "full"
)

// InvalidDate is returned for a string value that does not parse as a
// date. This pins what was previously host-parser-defined behavior.
const InvalidDate = "invalid date"

const (
	layoutDate = "1/2/2006"
	layoutTime = "3:04:05 PM"
	layoutFull = "Monday, January 2, 2006 3:04:05 PM"
)

// parseLayouts is the pinned contract for string-typed date values, tried
// in order.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006",
}

// Converter is the wrapper shape used for server-assigned timestamps.
// If ToDate panics, the failure propagates to the caller uncaught.
type Converter interface {
	ToDate() time.Time
}

// Format renders value under the requested mode.
//
// Accepted shapes: time.Time (zero value treated as absent), *time.Time,
// Converter wrappers, the store's primitive.DateTime, and parseable
// strings. Absent or non-date-like input (nil, booleans, numbers, plain
// structs) yields the empty string; an unparseable string yields
// InvalidDate rather than an error.
func Format(value any, mode string) string {
	var d time.Time

	switch v := value.(type) {
	case nil:
		return ""
	case Converter:
		d = v.ToDate()
	case time.Time:
		d = v
	case *time.Time:
		if v == nil {
			return ""
		}
		d = *v
	case primitive.DateTime:
		d = v.Time()
	case string:
		parsed, ok := parseString(v)
		if !ok {
			return InvalidDate
		}
		d = parsed
	default:
		return ""
	}

	if d.IsZero() {
		return ""
	}

	switch mode {
	case ModeDate:
		return d.Format(layoutDate)
	case ModeTime:
		return d.Format(layoutTime)
	case ModeFull:
		return d.Format(layoutFull)
	default: // ModeShort and anything unrecognized
		return d.Format(layoutDate) + " " + d.Format(layoutTime)
	}
}

func parseString(s string) (time.Time, bool) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
