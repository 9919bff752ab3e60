package results

import "slices"

// TeamInfo carries the team display metadata the aggregator needs.
type TeamInfo struct {
	ID       string
	Name     string
	Province string
}

// TeamResult is one ranked team leaderboard row.
type TeamResult struct {
	Rank           int
	TeamID         string
	TeamName       string
	Province       string
	DisciplineID   string
	DisciplineName string
	TotalScore     float64
	TotalX         int
	TotalV         int
	MemberCount    int
	ScoresCounted  int
}

// CountedScores returns how many member scores count for a team of n
// shooters: a four-person team drops its weakest shooter, every other size
// counts everyone.
func CountedScores(n int) int {
	if n == 4 {
		return 3
	}
	return n
}

type partitionKey struct {
	teamID       string
	disciplineID string
}

// AggregateTeams folds verified scores into ranked team results. Member
// totals reuse the individual aggregation before the team-level rollup.
// Registrations without a team are ignored; a team ID that cannot be
// resolved degrades to an Unknown label and is reported.
// PRE: scores contain only verified rows
// POST: teams sorted by the shared (score, X, V) comparator, 1-based ranks
func AggregateTeams(scores []VerifiedScore, entries []Entry, teams []TeamInfo) ([]TeamResult, []Anomaly) {
	individuals, anomalies := AggregateIndividual(scores, entries)

	byTeam := make(map[string]TeamInfo, len(teams))
	for _, t := range teams {
		byTeam[t.ID] = t
	}

	// Partition member totals by (team, discipline) in first-seen order.
	var order []partitionKey
	partitions := make(map[partitionKey][]IndividualResult)
	for _, r := range individuals {
		if r.TeamID == "" {
			continue
		}
		key := partitionKey{teamID: r.TeamID, disciplineID: r.DisciplineID}
		if _, seen := partitions[key]; !seen {
			order = append(order, key)
		}
		partitions[key] = append(partitions[key], r)
	}

	var rows []TeamResult
	for _, key := range order {
		members := partitions[key]
		slices.SortStableFunc(members, func(a, b IndividualResult) int {
			return CompareTotals(a.TotalScore, a.TotalX, a.TotalV, b.TotalScore, b.TotalX, b.TotalV)
		})

		k := CountedScores(len(members))
		row := TeamResult{
			TeamID:        key.teamID,
			DisciplineID:  key.disciplineID,
			MemberCount:   len(members),
			ScoresCounted: k,
		}
		if len(members) > 0 {
			row.DisciplineName = members[0].DisciplineName
		}
		if info, ok := byTeam[key.teamID]; ok {
			row.TeamName = displayOrUnknown(info.Name)
			row.Province = info.Province
		} else {
			row.TeamName = UnknownLabel
			anomalies = append(anomalies, Anomaly{
				RegistrationID: members[0].RegistrationID,
				Reason:         "registration references unknown team",
			})
		}

		for _, m := range members[:k] {
			row.TotalScore += m.TotalScore
			row.TotalX += m.TotalX
			row.TotalV += m.TotalV
		}
		row.TotalScore = roundTo3(row.TotalScore)
		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(a, b TeamResult) int {
		return CompareTotals(a.TotalScore, a.TotalX, a.TotalV, b.TotalScore, b.TotalX, b.TotalV)
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows, anomalies
}
