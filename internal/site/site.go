// Compiled-in definitions of the monitored listing sites.
// The generic extraction engine is parameterized by these; anything a
// site knows about its own markup goes into the hint fields instead of
// into site-specific code.

package site

// Site describes one monitored traineeship listing page.
type Site struct {
	Name     string
	URL      string
	BaseURL  string //scheme+host, used to absolutize relative links
	DataFile string //CSV history file name inside the data directory
	Emoji    string //decorates the alert header

	//ExtraSelectors are tried before the generic known-selector list
	//when locating listing containers.
	ExtraSelectors []string
	//ExtraDeadlineLabels / ExtraStartLabels extend the labeled-date
	//prefixes scanned for in a container's text.
	ExtraDeadlineLabels []string
	ExtraStartLabels    []string
}

var erasmusIntern = Site{
	Name:     "ErasmusIntern",
	URL:      "https://erasmusintern.org/traineeships",
	BaseURL:  "https://erasmusintern.org",
	DataFile: "erasmusintern_traineeships.csv",
	Emoji:    "🇪🇺",
}

var eurOdyssey = Site{
	Name:     "EurOdyssey",
	URL:      "https://eurodyssey.aer.eu/traineeships/?traineeship-country=&sector=&traineeship-start-date=19%2F06%2F2025&region=&traineeship-title-or-ref=&traineeship-start-date-before=&sortfield=&sortorder=desc",
	BaseURL:  "https://eurodyssey.aer.eu",
	DataFile: "eurodyssey_traineeships.csv",
	Emoji:    "🚨",
	ExtraSelectors: []string{
		"#traineeship-table tr.ed-table-row",
		"tr.ed-table-row",
	},
	ExtraDeadlineLabels: []string{"Until:"},
	ExtraStartLabels:    []string{"From:"},
}

// All returns every monitored site, in the order they are checked.
func All() []Site {
	return []Site{erasmusIntern, eurOdyssey}
}
