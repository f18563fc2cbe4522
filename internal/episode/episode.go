package episode

import (
	"regexp"
	"strconv"
)

// Match describes a successful extraction, including which rule fired so
// callers can log ambiguous or surprising matches.
type Match struct {
	Number int
	Rule   string
}

// rule pairs a naming convention with the pattern that recognizes it. Every
// pattern captures the episode digits in group 1 and refuses runs longer than
// three digits so years and resolutions are not mistaken for episodes.
type rule struct {
	name    string
	pattern *regexp.Regexp
}

// rules are tried in priority order; the first match wins.
var rules = []rule{
	// E01, e001 — an E directly followed by the episode digits.
	{name: "e-number", pattern: regexp.MustCompile(`(?i)e(\d{1,3})(?:\D|$)`)},
	// ep01, episode 12, Episode_3 — prefix with optional separator.
	{name: "ep-prefix", pattern: regexp.MustCompile(`(?i)ep(?:isode)?[ ._-]*(\d{1,3})(?:\D|$)`)},
	// "- 01", "-  001" — hyphen, spaces, then the episode digits.
	{name: "dash-number", pattern: regexp.MustCompile(`-\s+(\d{1,3})(?:\D|$)`)},
}

// Find runs the rule list against filename and reports the first match.
func Find(filename string) (Match, bool) {
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(filename)
		if m == nil {
			continue
		}
		number, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return Match{Number: number, Rule: r.name}, true
	}
	return Match{}, false
}

// Extract returns the episode number for filename, with leading zeros
// stripped ("001" parses as 1). The boolean is false when no rule matched.
func Extract(filename string) (int, bool) {
	m, ok := Find(filename)
	return m.Number, ok
}
