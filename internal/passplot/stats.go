package passplot

// PassPlotStats summarizes a filtered event subset.
//
// TotalThrows counts throw attempts: pass, goal, drop, and throwaway. A
// stall is a turnover without a throw, so it increments Turnovers but not
// the attempt denominator the rates divide by. Rates over an empty subset
// are zero, never NaN.
type PassPlotStats struct {
	TotalThrows        int            `json:"total_throws"`
	Completions        int            `json:"completions"`
	CompletionRate     float64        `json:"completion_rate"`
	Turnovers          int            `json:"turnovers"`
	TurnoverRate       float64        `json:"turnover_rate"`
	Goals              int            `json:"goals"`
	GoalRate           float64        `json:"goal_rate"`
	YardsPerThrow      float64        `json:"yards_per_throw"`
	YardsPerCompletion float64        `json:"yards_per_completion"`
	PassTypes          []PassTypeStat `json:"pass_types"`
}

// PassTypeStat is one row of the per-pass-type breakdown. Share is the
// fraction of all throw attempts in the subset.
type PassTypeStat struct {
	Type  PassType `json:"type"`
	Count int      `json:"count"`
	Share float64  `json:"share"`
}

// ComputeStats aggregates the given (already filtered) events. Yardage means
// use the attacking-direction gain of each throw; events missing either
// endpoint are left out of the mean, not treated as zero.
func ComputeStats(events []PassPlotEvent) PassPlotStats {
	stats := PassPlotStats{
		PassTypes: make([]PassTypeStat, 0),
	}

	var throwYards, completionYards float64
	var throwsMeasured, completionsMeasured int
	passTypeCounts := make(map[PassType]int)

	for _, e := range events {
		if e.isThrow() {
			stats.TotalThrows++
		}

		switch e.Type {
		case EventPass:
			stats.Completions++
		case EventGoal:
			stats.Completions++
			stats.Goals++
		case EventDrop, EventThrowaway, EventStall:
			stats.Turnovers++
		}

		if gain, ok := e.gain(); ok {
			throwYards += gain
			throwsMeasured++
			if e.Type == EventPass || e.Type == EventGoal {
				completionYards += gain
				completionsMeasured++
			}
		}

		if passType, ok := e.PassType(); ok {
			passTypeCounts[passType]++
		}
	}

	stats.CompletionRate = ratio(stats.Completions, stats.TotalThrows)
	stats.TurnoverRate = ratio(stats.Turnovers, stats.TotalThrows)
	stats.GoalRate = ratio(stats.Goals, stats.TotalThrows)

	if throwsMeasured > 0 {
		stats.YardsPerThrow = throwYards / float64(throwsMeasured)
	}
	if completionsMeasured > 0 {
		stats.YardsPerCompletion = completionYards / float64(completionsMeasured)
	}

	for _, t := range passTypeOrder {
		count, ok := passTypeCounts[t]
		if !ok {
			continue
		}
		stats.PassTypes = append(stats.PassTypes, PassTypeStat{
			Type:  t,
			Count: count,
			Share: ratio(count, stats.TotalThrows),
		})
	}

	return stats
}

func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}
