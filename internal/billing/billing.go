package billing

import (
	"sort"

	"github.com/margru/togglbill/internal/config"
	"github.com/margru/togglbill/internal/model"
)

// BillableMinutes applies the tiered rounding policy to one day's worked
// minutes. Short days round up to the next full block, except in the bands
// just above each boundary (61–70 and beyond 120) where the actual minutes
// pass through unchanged:
//
//	  0–10  → 0
//	 11–60  → 60
//	 61–70  → pass through
//	 71–120 → 120
//	 121+   → pass through
//
// Totals outside these ranges (negative, from malformed source data) also
// pass through unchanged.
func BillableMinutes(minutes int64) int64 {
	switch {
	case minutes >= 0 && minutes <= 10:
		return 0
	case minutes >= 11 && minutes <= 60:
		return 60
	case minutes >= 61 && minutes <= 70:
		return minutes
	case minutes >= 71 && minutes <= 120:
		return 120
	default:
		return minutes
	}
}

// BuildReport produces the date-sorted billing report for one client. A day
// is marked billed when its date is at or before the client's last billed
// date; billed days stay visible with their computed amount but are excluded
// from the report totals.
func BuildReport(summary model.Summary, client config.Client) model.BillReport {
	report := model.BillReport{Days: make([]model.BillReportDay, 0, len(summary))}

	for day, minutes := range summary {
		billable := BillableMinutes(minutes)
		report.Days = append(report.Days, model.BillReportDay{
			Date:          day,
			ActualMinutes: minutes,
			BilledMinutes: billable,
			BilledAmount:  float64(billable) * client.HourlyRate / 60,
			// Lexicographic comparison is chronological for the fixed
			// "YYYY-MM-DD" form.
			Billed: day <= client.LastBilledDate,
		})
	}

	sort.Slice(report.Days, func(i, j int) bool {
		return report.Days[i].Date < report.Days[j].Date
	})

	return report
}
