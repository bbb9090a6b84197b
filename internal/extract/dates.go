package extract

import "regexp"

// Date shapes accepted inside labeled text, numeric variants first.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),     // DD/MM/YYYY or D/M/YYYY
	regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{4}`),     // DD-MM-YYYY
	regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`),     // YYYY-MM-DD
	regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{4}`),   // DD.MM.YYYY
	regexp.MustCompile(`[A-Za-z]+ \d{1,2}, \d{4}`),  // Month DD, YYYY
	regexp.MustCompile(`\d{1,2} [A-Za-z]+ \d{4}`),   // DD Month YYYY
}

// dateIn returns the first date-shaped substring of text, or "".
func dateIn(text string) string {
	if text == "" {
		return ""
	}
	for _, p := range datePatterns {
		if m := p.FindString(text); m != "" {
			return m
		}
	}
	return ""
}
