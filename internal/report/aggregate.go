// Package report computes the dashboard aggregations. Every function is
// pure over an in-memory snapshot of the records: the live views replace
// their whole collection on each update, so there is nothing incremental
// to maintain.
package report

import (
	"sort"
	"strings"
	"time"

	"tablero/internal/domain"
	"tablero/internal/workflow"
)

// PlaceholderName is used when a record has no client or product name.
const PlaceholderName = "(sin nombre)"

// CodeCount holds the per-code buckets of a category tally.
type CodeCount struct {
	Pending float64 `json:"pending"`
	Ready   float64 `json:"ready"`
}

// CategoryTally is the result of tallying remito line items against the
// configured category codes.
type CategoryTally struct {
	PerCode      map[string]*CodeCount `json:"per_code"`
	TotalPending float64               `json:"total_pending"`
	TotalReady   float64               `json:"total_ready"`
}

// NormalizeCode canonicalizes a product code for matching: trimmed,
// uppercased, internal whitespace collapsed to single spaces.
func NormalizeCode(code string) string {
	return strings.Join(strings.Fields(strings.ToUpper(code)), " ")
}

// TallyCategories counts line-item quantities per configured code.
// Quantities on remitos already counted as shipped go to the ready total
// only; the per-code ready bucket stays at zero (the production board
// only shows what is still pending per code). Codes not present in the
// config are ignored entirely.
func TallyCategories(remitos []domain.Remito, config domain.CategoryConfig) CategoryTally {
	tally := CategoryTally{PerCode: make(map[string]*CodeCount)}
	for _, codes := range config {
		for _, code := range codes {
			if norm := NormalizeCode(code); norm != "" {
				if _, ok := tally.PerCode[norm]; !ok {
					tally.PerCode[norm] = &CodeCount{}
				}
			}
		}
	}

	for i := range remitos {
		ready := workflow.CountedAsReady(&remitos[i])
		for _, item := range remitos[i].LineItems {
			count, ok := tally.PerCode[NormalizeCode(item.Code)]
			if !ok {
				continue
			}
			if ready {
				tally.TotalReady += item.Quantity
				continue
			}
			count.Pending += item.Quantity
			tally.TotalPending += item.Quantity
		}
	}
	return tally
}

// NamedCount is one row of a grouped aggregation, ordered by Value.
type NamedCount struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// dateFormats accepted for remito issue dates and ticket dates.
var dateFormats = []string{"02/01/2006", "02/01/06"}

func parseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, f := range dateFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthlyCounts groups remitos and tickets by issue month ("2006-01").
// Records with unparseable dates are skipped. Rows come back in
// chronological order.
func MonthlyCounts(remitos []domain.Remito, tickets []domain.SupportTicket) []NamedCount {
	byMonth := make(map[string]float64)
	for i := range remitos {
		if t, ok := parseDay(remitos[i].IssueDate); ok {
			byMonth[t.Format("2006-01")]++
		}
	}
	for i := range tickets {
		if t, ok := parseDay(tickets[i].Date); ok {
			byMonth[t.Format("2006-01")]++
		}
	}

	rows := make([]NamedCount, 0, len(byMonth))
	for month, n := range byMonth {
		rows = append(rows, NamedCount{Name: month, Value: n})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
}

// WeekdayCounts groups remitos and support tickets by weekday, Monday
// through Friday only; weekend dates and unparseable dates are
// excluded. Rows always cover all five weekdays in order, zeros
// included.
func WeekdayCounts(remitos []domain.Remito, tickets []domain.SupportTicket) []NamedCount {
	counts := make(map[time.Weekday]float64)
	count := func(date string) {
		t, ok := parseDay(date)
		if !ok {
			return
		}
		if _, ok := weekdayNames[t.Weekday()]; ok {
			counts[t.Weekday()]++
		}
	}
	for i := range remitos {
		count(remitos[i].IssueDate)
	}
	for i := range tickets {
		count(tickets[i].Date)
	}

	rows := make([]NamedCount, 0, 5)
	for wd := time.Monday; wd <= time.Friday; wd++ {
		rows = append(rows, NamedCount{Name: weekdayNames[wd], Value: counts[wd]})
	}
	return rows
}

// TopProducts returns the n product codes with the highest summed
// quantity across all remito line items. Items without a code count
// under the placeholder name.
func TopProducts(remitos []domain.Remito, n int) []NamedCount {
	sums := make(map[string]float64)
	for i := range remitos {
		for _, item := range remitos[i].LineItems {
			name := NormalizeCode(item.Code)
			if name == "" {
				name = PlaceholderName
			}
			sums[name] += item.Quantity
		}
	}
	return topN(sums, n)
}

// TopClients returns the n clients ranked by summed line-item quantity
// for remitos, or by ticket count when tickets are passed instead.
func TopClients(remitos []domain.Remito, tickets []domain.SupportTicket, n int) []NamedCount {
	sums := make(map[string]float64)
	for i := range remitos {
		name := strings.TrimSpace(remitos[i].Client)
		if name == "" {
			name = PlaceholderName
		}
		for _, item := range remitos[i].LineItems {
			sums[name] += item.Quantity
		}
	}
	for i := range tickets {
		name := strings.TrimSpace(tickets[i].Client)
		if name == "" {
			name = PlaceholderName
		}
		sums[name]++
	}
	return topN(sums, n)
}

func topN(sums map[string]float64, n int) []NamedCount {
	rows := make([]NamedCount, 0, len(sums))
	for name, v := range sums {
		rows = append(rows, NamedCount{Name: name, Value: v})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].Name < rows[j].Name
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}
