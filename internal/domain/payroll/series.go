package payroll

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Window is a relative cutoff for chart series requests.
type Window string

const (
	Window4Weeks   Window = "4w"
	Window8Weeks   Window = "8w"
	Window12Weeks  Window = "12w"
	Window6Months  Window = "6m"
	Window12Months Window = "12m"
	Window24Months Window = "24m"
	WindowAll      Window = "all"
)

var windows = map[Window]struct{}{
	Window4Weeks:   {},
	Window8Weeks:   {},
	Window12Weeks:  {},
	Window6Months:  {},
	Window12Months: {},
	Window24Months: {},
	WindowAll:      {},
}

// ParseWindow validates a window query value. Empty input means "no window
// requested", which selects the recent-records cap instead of a cutoff.
func ParseWindow(s string) (Window, bool) {
	if s == "" {
		return "", true
	}
	w := Window(s)
	_, ok := windows[w]
	return w, ok
}

// Cutoff returns the earliest disbursement date admitted by the window.
// The second return is false when the window admits everything.
func (w Window) Cutoff(now time.Time) (time.Time, bool) {
	switch w {
	case Window4Weeks:
		return now.AddDate(0, 0, -28), true
	case Window8Weeks:
		return now.AddDate(0, 0, -56), true
	case Window12Weeks:
		return now.AddDate(0, 0, -84), true
	case Window6Months:
		return now.AddDate(0, -6, 0), true
	case Window12Months:
		return now.AddDate(0, -12, 0), true
	case Window24Months:
		return now.AddDate(0, -24, 0), true
	default:
		return time.Time{}, false
	}
}

// SeriesPoint is one chart entry: the totals of a single disbursement.
type SeriesPoint struct {
	Label           string          `json:"label"` // e.g. "Aug 2025"
	Date            string          `json:"date"`  // ISO calendar date
	Gross           decimal.Decimal `json:"gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}

// seriesCap bounds a windowless series to the most recent records so chart
// payloads stay small.
const seriesCap = 24

// BuildSeries turns payroll records into a chart-ready series, oldest first.
// Records must already be scoped to the desired user set by the caller. When
// a window is given, records dated before now-window are dropped; otherwise
// only the seriesCap most recent records are kept. Input ordering does not
// matter: the result is always ascending by disbursement date.
func BuildSeries(records []PayrollRecord, window Window, now time.Time) []SeriesPoint {
	selected := make([]PayrollRecord, 0, len(records))

	if cutoff, bounded := window.Cutoff(now); bounded {
		for _, rec := range records {
			if !rec.DisbursementDate.Before(cutoff) {
				selected = append(selected, rec)
			}
		}
	} else {
		selected = append(selected, records...)
		if window == "" && len(selected) > seriesCap {
			// Cap to the most recent records before the ascending re-sort
			sort.SliceStable(selected, func(i, j int) bool {
				return selected[i].DisbursementDate.After(selected[j].DisbursementDate)
			})
			selected = selected[:seriesCap]
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].DisbursementDate.Before(selected[j].DisbursementDate)
	})

	points := make([]SeriesPoint, 0, len(selected))
	for _, rec := range selected {
		points = append(points, SeriesPoint{
			Label:           rec.DisbursementDate.Format("Jan 2006"),
			Date:            rec.DisbursementDate.Format("2006-01-02"),
			Gross:           rec.GrossAmount,
			TotalDeductions: rec.TotalDeductions,
			NetSalary:       rec.NetSalary,
		})
	}
	return points
}

// PlaceholderSeries builds a synthetic 12-month demo series for first-run
// dashboards with no real records yet. Output is never persisted and callers
// must flag it so it cannot be mistaken for real data.
func PlaceholderSeries(now time.Time) []SeriesPoint {
	points := make([]SeriesPoint, 0, 12)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)

	for i := 0; i < 12; i++ {
		month := start.AddDate(0, i, 0)
		gross := decimal.NewFromInt(5_000_000 + int64(i%4)*750_000)
		deductions := decimal.NewFromInt(600_000 + int64(i%3)*300_000)
		points = append(points, SeriesPoint{
			Label:           month.Format("Jan 2006"),
			Date:            month.Format("2006-01-02"),
			Gross:           gross,
			TotalDeductions: deductions,
			NetSalary:       gross.Sub(deductions),
		})
	}
	return points
}
