// Package reportfmt renders income summaries as the Khmer-facing report text
// posted back into chat channels.
package reportfmt

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sothea-dev/rielsum/internal/dto"
)

var khmerMonths = map[time.Month]string{
	time.January:   "មករា",
	time.February:  "កុម្ភៈ",
	time.March:     "មីនា",
	time.April:     "មេសា",
	time.May:       "ឧសភា",
	time.June:      "មិថុនា",
	time.July:      "កក្កដា",
	time.August:    "សីហា",
	time.September: "កញ្ញា",
	time.October:   "តុលា",
	time.November:  "វិច្ឆិកា",
	time.December:  "ធ្នូ",
}

// KhmerMonth returns the Khmer name for a month.
func KhmerMonth(m time.Month) string {
	if name, ok := khmerMonths[m]; ok {
		return name
	}
	return fmt.Sprintf("%d", int(m))
}

// FormatTime12Hour renders a timestamp as 03:04PM.
func FormatTime12Hour(t time.Time) string {
	return t.Format("03:04PM")
}

var symbolByCode = map[string]string{
	"KHR": "៛",
	"USD": "$",
}

// formatAmount renders KHR without decimals and everything else with two,
// both with thousands separators.
func formatAmount(code string, total decimal.Decimal) string {
	if code == "KHR" {
		return groupThousands(total.Round(0).StringFixed(0))
	}
	return groupThousands(total.StringFixed(2))
}

// groupThousands inserts comma separators into the integer part of a plain
// decimal string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// DailyReport renders the end-of-day transaction report.
func DailyReport(summary *dto.IncomeSummary, reportDate, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString("<b>សរុបប្រតិបត្តិការ</b>\n")
	fmt.Fprintf(&b, "<b>ថ្ងៃ %d %s %d</b>\nម៉ោងបូកសរុប <b>%s</b>\n",
		reportDate.Day(), KhmerMonth(reportDate.Month()), reportDate.Year(), FormatTime12Hour(generatedAt))

	khr := summary.ByCurrency["KHR"]
	usd := summary.ByCurrency["USD"]
	b.WriteString("<pre>\n")
	fmt.Fprintf(&b, "(៛): %-10s | ប្រតិបត្តិការ: %d\n", formatAmount("KHR", khr.Total), khr.Count)
	fmt.Fprintf(&b, "($): %-10s | ប្រតិបត្តិការ: %d\n", formatAmount("USD", usd.Total), usd.Count)
	b.WriteString("</pre>")

	if summary.FirstAt != nil && summary.LastAt != nil {
		loc := generatedAt.Location()
		fmt.Fprintf(&b, "<b>ម៉ោងប្រតិបត្តិការ:</b> <code>%s ➝ %s</code>",
			FormatTime12Hour(summary.FirstAt.In(loc)), FormatTime12Hour(summary.LastAt.In(loc)))
	} else {
		b.WriteString("<b>ម៉ោងប្រតិបត្តិការ:</b> គ្មាន")
	}

	return b.String()
}

// TotalSummary renders a per-currency total block under the given title.
// KHR and USD always appear, even when zero; other recorded currencies follow
// in sorted order.
func TotalSummary(summary *dto.IncomeSummary, title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n\n", title)

	codes := []string{"KHR", "USD"}
	var extras []string
	for code := range summary.ByCurrency {
		if code != "KHR" && code != "USD" {
			extras = append(extras, code)
		}
	}
	sort.Strings(extras)
	codes = append(codes, extras...)

	for _, code := range codes {
		breakdown := summary.ByCurrency[code]
		symbol, ok := symbolByCode[code]
		if !ok {
			symbol = code
		}
		fmt.Fprintf(&b, "%s (%s): %s ចំនួនប្រតិបត្តិការសរុប: %d\n",
			symbol, code, formatAmount(code, breakdown.Total), breakdown.Count)
	}

	return b.String()
}
