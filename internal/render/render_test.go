package render_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/margru/togglbill/internal/model"
	"github.com/margru/togglbill/internal/render"
)

func sampleReport() model.BillReport {
	return model.BillReport{Days: []model.BillReportDay{
		{Date: "2022-01-01", ActualMinutes: 5, BilledMinutes: 0, BilledAmount: 0, Billed: true},
		{Date: "2022-01-02", ActualMinutes: 25, BilledMinutes: 60, BilledAmount: 30, Billed: false},
		{Date: "2022-01-03", ActualMinutes: 80, BilledMinutes: 80, BilledAmount: 40, Billed: false},
	}}
}

func TestCSV(t *testing.T) {
	got := render.CSV(sampleReport())

	want := "date,actual_minutes,billed_minutes,billed_amount,billed\n" +
		"2022-01-01,5,0,0.00,true\n" +
		"2022-01-02,25,60,30.00,false\n" +
		"2022-01-03,80,80,40.00,false\n" +
		"total,,140,70.00,\n"

	if got != want {
		t.Errorf("CSV output:\n%s\nwant:\n%s", got, want)
	}
}

func TestJSON(t *testing.T) {
	out, err := render.JSON(sampleReport())
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded struct {
		Days         []model.BillReportDay `json:"days"`
		TotalMinutes int64                 `json:"total_minutes"`
		TotalHours   int64                 `json:"total_hours"`
		TotalAmount  float64               `json:"total_amount"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("decoding output: %v", err)
	}

	if len(decoded.Days) != 3 {
		t.Errorf("days = %d, want 3", len(decoded.Days))
	}
	if decoded.TotalMinutes != 140 {
		t.Errorf("total_minutes = %d, want 140", decoded.TotalMinutes)
	}
	if decoded.TotalHours != 3 {
		t.Errorf("total_hours = %d, want 3", decoded.TotalHours)
	}
	if decoded.TotalAmount != 70 {
		t.Errorf("total_amount = %v, want 70", decoded.TotalAmount)
	}
}

func TestTable(t *testing.T) {
	got := render.Table(sampleReport())

	for _, want := range []string{
		"DATE", "BILLED MIN",
		"2022-01-01", "2022-01-02", "2022-01-03",
		"Total minutes: 140",
		"Total hours: 3",
		"Total amount: € 70.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
}

func TestTableEmptyReport(t *testing.T) {
	got := render.Table(model.BillReport{})
	if !strings.Contains(got, "Total minutes: 0") {
		t.Errorf("empty report totals missing:\n%s", got)
	}
}
