package model

// TimeEntry is a single tracked interval as returned by the detailed report.
// Start and End are RFC3339 timestamps carrying a UTC offset; they are kept
// verbatim until aggregation parses them.
type TimeEntry struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DetailsResponse is one page of the detailed-report endpoint. TotalCount is
// the number of entries across all pages of the query, not just this page.
type DetailsResponse struct {
	Data       []TimeEntry `json:"data"`
	TotalCount int         `json:"total_count"`
}

// Summary maps a day key ("YYYY-MM-DD") to the total worked minutes that day.
type Summary map[string]int64

// BillReportDay is one day in the final report. Billed days keep their
// computed amount as an informational row but are excluded from totals.
type BillReportDay struct {
	Date          string  `json:"date"`
	ActualMinutes int64   `json:"actual_minutes"`
	BilledMinutes int64   `json:"billed_minutes"`
	BilledAmount  float64 `json:"billed_amount"`
	Billed        bool    `json:"billed"`
}

// BillReport is the finished report, days sorted ascending by date.
type BillReport struct {
	Days []BillReportDay `json:"days"`
}

// TotalMinutes sums billed minutes over days not yet billed.
func (r BillReport) TotalMinutes() int64 {
	var total int64
	for _, day := range r.Days {
		if !day.Billed {
			total += day.BilledMinutes
		}
	}
	return total
}

// TotalHours converts unbilled minutes to hours, rounding partial hours up
// so a client is never under-billed by truncation.
func (r BillReport) TotalHours() int64 {
	return (r.TotalMinutes() + 59) / 60
}

// TotalAmount sums the billed amount over days not yet billed.
func (r BillReport) TotalAmount() float64 {
	var total float64
	for _, day := range r.Days {
		if !day.Billed {
			total += day.BilledAmount
		}
	}
	return total
}
