package datescan

import (
	"regexp"
	"time"
)

// datePatterns are scanned in order; results group by pattern, not by
// position in the text.
var datePatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`\b\d{2}-\d{2}-\d{4}\b`), "02-01-2006"},
	{regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`), "1/2/2006"},
	{regexp.MustCompile(`\b\d{4}\.\d{1,2}\.\d{1,2}\b`), "2006.1.2"},
}

// ExtractDates scans text for dates in dd-mm-yyyy, m/d/yyyy, or yyyy.m.d
// form and returns them normalized to yyyy-mm-dd. Matches that fail calendar
// validation (day 32, month 13, Feb 30, ...) are skipped. Output is grouped
// by pattern: all dd-mm-yyyy matches first, then m/d/yyyy, then yyyy.m.d.
func ExtractDates(text string) []string {
	var dates []string
	for _, p := range datePatterns {
		for _, match := range p.re.FindAllString(text, -1) {
			t, err := time.Parse(p.layout, match)
			if err != nil {
				continue
			}
			dates = append(dates, t.Format("2006-01-02"))
		}
	}
	return dates
}
