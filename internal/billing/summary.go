// Package billing turns raw time entries into a day-bucketed summary and a
// billing report.
package billing

import (
	"fmt"
	"time"

	"github.com/margru/togglbill/internal/model"
)

// ParseError reports a time-entry field that is not a valid RFC3339
// timestamp. One bad field aborts the whole aggregation so billing is never
// computed on partial data.
type ParseError struct {
	Field string // "start" or "end"
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s timestamp %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// BuildSummary buckets entries by the calendar day of their start timestamp,
// in the timestamp's own UTC offset, summing whole worked minutes per day.
// Durations are floored to whole minutes and not clamped: a negative duration
// from malformed source data subtracts from its day's total.
func BuildSummary(entries []model.TimeEntry) (model.Summary, error) {
	summary := model.Summary{}

	for _, entry := range entries {
		start, err := time.Parse(time.RFC3339, entry.Start)
		if err != nil {
			return nil, &ParseError{Field: "start", Value: entry.Start, Err: err}
		}
		end, err := time.Parse(time.RFC3339, entry.End)
		if err != nil {
			return nil, &ParseError{Field: "end", Value: entry.End, Err: err}
		}

		day := start.Format("2006-01-02")
		summary[day] += wholeMinutes(end.Sub(start))
	}

	return summary, nil
}

// wholeMinutes floors a duration to whole minutes, toward negative infinity,
// so -90s is -2 minutes rather than -1.
func wholeMinutes(d time.Duration) int64 {
	secs := int64(d / time.Second)
	mins := secs / 60
	if secs%60 != 0 && secs < 0 {
		mins--
	}
	return mins
}
