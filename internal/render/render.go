// Package render formats a finished bill report for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/margru/togglbill/internal/model"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// Table renders the report as a bordered table with the totals underneath.
func Table(report model.BillReport) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col >= 1 && col <= 3 {
				return numberStyle
			}
			return cellStyle
		}).
		Headers("DATE", "ACTUAL MIN", "BILLED MIN", "AMOUNT", "BILLED")

	for _, day := range report.Days {
		t.Row(
			day.Date,
			strconv.FormatInt(day.ActualMinutes, 10),
			strconv.FormatInt(day.BilledMinutes, 10),
			formatAmount(day.BilledAmount),
			strconv.FormatBool(day.Billed),
		)
	}

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total minutes: %d\n", report.TotalMinutes())
	fmt.Fprintf(&b, "Total hours: %d\n", report.TotalHours())
	fmt.Fprintf(&b, "Total amount: € %s\n", formatAmount(report.TotalAmount()))
	return b.String()
}

// CSV renders the report as comma-separated rows for spreadsheet import.
func CSV(report model.BillReport) string {
	var b strings.Builder
	b.WriteString("date,actual_minutes,billed_minutes,billed_amount,billed\n")
	for _, day := range report.Days {
		fmt.Fprintf(&b, "%s,%d,%d,%s,%t\n",
			day.Date, day.ActualMinutes, day.BilledMinutes, formatAmount(day.BilledAmount), day.Billed)
	}
	fmt.Fprintf(&b, "total,,%d,%s,\n", report.TotalMinutes(), formatAmount(report.TotalAmount()))
	return b.String()
}

// JSON renders the report with its derived totals included.
func JSON(report model.BillReport) (string, error) {
	out := struct {
		Days         []model.BillReportDay `json:"days"`
		TotalMinutes int64                 `json:"total_minutes"`
		TotalHours   int64                 `json:"total_hours"`
		TotalAmount  float64               `json:"total_amount"`
	}{
		Days:         report.Days,
		TotalMinutes: report.TotalMinutes(),
		TotalHours:   report.TotalHours(),
		TotalAmount:  report.TotalAmount(),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report JSON: %w", err)
	}
	return string(data), nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
