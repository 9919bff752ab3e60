package score

import "math"

// VBonusPerV is the fractional bonus added to the total per V ring hit.
// It exists solely to break ties between numerically equal integer totals
// without a secondary sort key. Federations may tune it.
const VBonusPerV = 0.001

// Window is the contiguous run of shot rounds that count toward the score.
// Both bounds are inclusive and 1-based.
type Window struct {
	Start int
	End   int
}

// Len returns the number of rounds in the window.
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start + 1
}

// Contains reports whether the round falls inside the window.
func (w Window) Contains(round int) bool {
	return round >= w.Start && round <= w.End
}

// Totals holds the computed sums for one stage attempt.
type Totals struct {
	TotalScore float64
	XCount     int
	VCount     int
}

// ComputeScoringWindow determines which shots count under the given sighter
// mode. The window is clamped so it never runs past the recorded shots,
// even when fewer shots than expected were entered.
// PRE: totalShots >= 1 and scoringRounds >= 1
// POST: returned window has length <= scoringRounds and Start <= End
func ComputeScoringWindow(totalShots, scoringRounds int, sighterMode string) (Window, error) {
	if scoringRounds <= 0 || totalShots < 1 {
		return Window{}, ErrInvalidStageDefinition
	}

	preferred := 0
	switch sighterMode {
	case CountSighter1:
		preferred = 1
	case CountSighter2:
		preferred = 2
	case CountNone:
		preferred = 3
	default:
		return Window{}, ErrInvalidSighterMode
	}

	start := totalShots - scoringRounds + 1
	if start < 1 {
		start = 1
	}
	if preferred < start {
		start = preferred
	}
	end := start + scoringRounds - 1
	if end > totalShots {
		end = totalShots
	}
	return Window{Start: start, End: end}, nil
}

// NormalizeShotsForWindow zeroes every shot outside the window so totals
// can never be influenced by out-of-window data, even when upstream input
// was inconsistent. In-window shots pass through unchanged.
// PRE: none
// POST: returns a new slice; the input is not mutated
func NormalizeShotsForWindow(shots []Shot, w Window) []Shot {
	out := make([]Shot, len(shots))
	for i, s := range shots {
		if w.Contains(s.Round) {
			out[i] = s
		} else {
			out[i] = Shot{Round: s.Round}
		}
	}
	return out
}

// ComputeTotals sums in-window shot scores and ring counts. The fractional
// V bonus is folded into the total and the result rounded to 3 decimals.
// PRE: none (an empty window yields zero totals)
// POST: TotalScore = round3(sum(score) + VCount*VBonusPerV)
func ComputeTotals(shots []Shot, w Window) Totals {
	var t Totals
	base := 0
	for _, s := range shots {
		if !w.Contains(s.Round) {
			continue
		}
		base += s.Score
		if s.IsX {
			t.XCount++
		}
		if s.IsV {
			t.VCount++
		}
	}
	t.TotalScore = round3(float64(base) + float64(t.VCount)*VBonusPerV)
	return t
}

// BuildStageScore runs the full calculation for one stage attempt: window,
// normalization, totals. Malformed shot data is clamped rather than
// rejected; the only fatal input is a stage definition under which no
// window can be computed.
// PRE: def.ScoringRounds >= 1 and len(shots) >= 1
// POST: DNF/DQ attempts carry TotalScore 0 but keep X/V counts and shots
func BuildStageScore(shots []Shot, def StageDefinition, sighterMode string, isDNF, isDQ bool) (StageScore, error) {
	w, err := ComputeScoringWindow(len(shots), def.ScoringRounds, sighterMode)
	if err != nil {
		return StageScore{}, err
	}

	clamped := clampShotScores(shots, def.MaxScorePerShot)
	normalized := NormalizeShotsForWindow(clamped, w)
	totals := ComputeTotals(normalized, w)

	sc := StageScore{
		SighterMode: sighterMode,
		TotalScore:  totals.TotalScore,
		XCount:      totals.XCount,
		VCount:      totals.VCount,
		IsDNF:       isDNF,
		IsDQ:        isDQ,
		Shots:       normalized,
		Version:     ShotRecordVersion,
	}
	if isDNF || isDQ {
		sc.TotalScore = 0
	}
	return sc, nil
}

// clampShotScores forces every shot score into [0, maxScore].
func clampShotScores(shots []Shot, maxScore int) []Shot {
	if maxScore <= 0 {
		return shots
	}
	out := make([]Shot, len(shots))
	for i, s := range shots {
		if s.Score > maxScore {
			s.Score = maxScore
		}
		if s.Score < 0 {
			s.Score = 0
		}
		out[i] = s
	}
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
