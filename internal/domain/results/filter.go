package results

import "strings"

// FilterOptions narrows a leaderboard. Zero values mean "no filter".
type FilterOptions struct {
	DisciplineID      string
	AgeClassification string
	SearchText        string // matches name, number and club, case-insensitive
}

// Filter returns the result rows matching the options. It is a pure filter:
// because aggregation is a per-registration fold, filtering rows after
// aggregation yields the same set as filtering entries before it. Callers
// should re-rank the filtered rows.
func Filter(rows []IndividualResult, opts FilterOptions) []IndividualResult {
	var out []IndividualResult
	for _, r := range rows {
		if opts.DisciplineID != "" && r.DisciplineID != opts.DisciplineID {
			continue
		}
		if opts.AgeClassification != "" && r.AgeClassification != opts.AgeClassification {
			continue
		}
		if !matchesSearch(opts.SearchText, r.ShooterName, r.ShooterNumber, r.Club) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterEntries applies the same options to the registration set before
// aggregation.
func FilterEntries(entries []Entry, opts FilterOptions) []Entry {
	var out []Entry
	for _, e := range entries {
		if opts.DisciplineID != "" && e.DisciplineID != opts.DisciplineID {
			continue
		}
		if opts.AgeClassification != "" && e.AgeClassification != opts.AgeClassification {
			continue
		}
		if !matchesSearch(opts.SearchText, e.ShooterName, e.ShooterNumber, e.Club) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTeams narrows team rows to one discipline.
func FilterTeams(rows []TeamResult, disciplineID string) []TeamResult {
	if disciplineID == "" {
		return rows
	}
	var out []TeamResult
	for _, r := range rows {
		if r.DisciplineID == disciplineID {
			out = append(out, r)
		}
	}
	return out
}

func matchesSearch(query string, fields ...string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
