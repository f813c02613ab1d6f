package normalizer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	isoDateRe   = regexp.MustCompile(`^(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})$`)
	usDateRe    = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})$`)
	excelSerial = regexp.MustCompile(`^\d{5}(\.\d+)?$`)
)

var fallbackLayouts = []string{
	"02-Jan-2006",
	"2-Jan-2006",
	"02-Jan-06",
	"2-Jan-06",
	"Jan-2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Month-name layouts span several tokens and are matched against the whole text.
var spelledLayouts = []string{
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// Serial day numbers outside this range are not treated as workbook dates.
const (
	minExcelSerial = 20000
	maxExcelSerial = 80000
)

// ParseFlexibleDate reads the first whitespace-separated token of s as a calendar date.
// Accepted forms: YYYY-M-D (dash, slash or dot separated, padding optional), M/D/YY and
// M/D/YYYY (also with dashes, two-digit years are 20yy), a handful of fallback layouts
// and workbook serial day numbers. Month-name dates such as "Jan 2 2024" are read from
// the whole text. The result is midnight UTC.
func ParseFlexibleDate(s string) (time.Time, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return time.Time{}, false
	}
	only := fields[0]

	if m := isoDateRe.FindStringSubmatch(only); m != nil {
		return ymd(atoi(m[1]), atoi(m[2]), atoi(m[3])), true
	}

	if m := usDateRe.FindStringSubmatch(only); m != nil {
		y := atoi(m[3])
		if y < 100 {
			y += 2000
		}
		return ymd(y, atoi(m[1]), atoi(m[2])), true
	}

	if excelSerial.MatchString(only) {
		v, err := strconv.ParseFloat(only, 64)
		if err == nil && v >= minExcelSerial && v <= maxExcelSerial {
			if t, err := excelize.ExcelDateToTime(v, false); err == nil {
				return ymd(t.Year(), int(t.Month()), t.Day()), true
			}
		}
		return time.Time{}, false
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, only); err == nil {
			return ymd(t.Year(), int(t.Month()), t.Day()), true
		}
	}

	whole := strings.Join(fields, " ")
	for _, layout := range spelledLayouts {
		if t, err := time.Parse(layout, whole); err == nil {
			return ymd(t.Year(), int(t.Month()), t.Day()), true
		}
	}
	return time.Time{}, false
}

// ymd normalises out-of-range parts the same way time.Date does (Feb 30 is Mar 1).
func ymd(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
