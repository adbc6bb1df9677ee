package toggl

import (
	"fmt"
	"time"
)

// Window is one calendar-year retrieval range, inclusive on both ends.
// The report API caps responses at 50 entries per page, so history is
// reconstructed one year window at a time.
type Window struct {
	Since string // "<year>-01-01"
	Until string // "<year>-12-31"
}

// Windows returns the calendar-year windows from startYear through untilYear
// inclusive, in ascending order. untilYear <= 0 means the current year; when
// untilYear equals the current year exactly that one final window is included.
func Windows(startYear, untilYear int) []Window {
	if untilYear <= 0 {
		untilYear = time.Now().Year()
	}

	var windows []Window
	for year := startYear; year <= untilYear; year++ {
		windows = append(windows, Window{
			Since: fmt.Sprintf("%d-01-01", year),
			Until: fmt.Sprintf("%d-12-31", year),
		})
	}
	return windows
}
