package passplot

import "slices"

// PlayerRef is one entry of a master player list: the identity key the
// filter uses plus the display name.
type PlayerRef struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// MasterPlayerLists are the team-scoped, unfiltered candidate populations
// for the thrower and receiver facets, in first-appearance order. They seed
// the select-all bootstrap and pin which keys stay visible at zero count,
// and are rebuilt only when the inspected team changes.
type MasterPlayerLists struct {
	Throwers  []PlayerRef `json:"throwers"`
	Receivers []PlayerRef `json:"receivers"`
}

// BuildMasterPlayerLists collects every thrower and receiver appearing in
// the given team's events, no other filters applied.
func BuildMasterPlayerLists(events []PassPlotEvent, team TeamSide) MasterPlayerLists {
	masters := MasterPlayerLists{
		Throwers:  make([]PlayerRef, 0),
		Receivers: make([]PlayerRef, 0),
	}

	seenThrowers := make(map[string]bool)
	seenReceivers := make(map[string]bool)
	for _, e := range events {
		if e.Team != team {
			continue
		}
		if key := e.ThrowerKey(); key != "" && !seenThrowers[key] {
			seenThrowers[key] = true
			masters.Throwers = append(masters.Throwers, PlayerRef{Key: key, Name: e.ThrowerName})
		}
		if key := e.ReceiverKey(); key != "" && !seenReceivers[key] {
			seenReceivers[key] = true
			masters.Receivers = append(masters.Receivers, PlayerRef{Key: key, Name: e.ReceiverName})
		}
	}

	return masters
}

type PlayerCount struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type PeriodCount struct {
	Period int64 `json:"period"`
	Count  int   `json:"count"`
}

// FilterCounts is the derived facet view: for every dimension, the counts
// reachable under all *other* active filters. Recomputed wholesale on every
// filter change.
type FilterCounts struct {
	Teams      []KeyCount    `json:"teams"`
	Throwers   []PlayerCount `json:"throwers"`
	Receivers  []PlayerCount `json:"receivers"`
	EventTypes []KeyCount    `json:"event_types"`
	LineTypes  []KeyCount    `json:"line_types"`
	PassTypes  []KeyCount    `json:"pass_types"`
	Periods    []PeriodCount `json:"periods"`
}

// ComputeFilterCounts recomputes every facet of the filter UI under faceted
// search semantics: each dimension's counts apply every active filter except
// that dimension's own. Keys present in the team-scoped master population
// are retained at zero count; keys that never occur there are omitted.
//
// The first call after construction or a team switch bootstraps the state by
// selecting every master key of every faceted dimension, so the initial view
// shows everything.
func ComputeFilterCounts(events []PassPlotEvent, state *FilterState, masters MasterPlayerLists) FilterCounts {
	population := masterPopulation(events, state.Team)

	if !state.initialized {
		bootstrapSelections(state, masters, population)
		state.initialized = true
	}

	counts := FilterCounts{
		Teams:      make([]KeyCount, 0, 2),
		Throwers:   make([]PlayerCount, 0, len(masters.Throwers)),
		Receivers:  make([]PlayerCount, 0, len(masters.Receivers)),
		EventTypes: make([]KeyCount, 0, len(population.eventTypes)),
		LineTypes:  make([]KeyCount, 0, len(population.lineTypes)),
		PassTypes:  make([]KeyCount, 0, len(population.passTypes)),
		Periods:    make([]PeriodCount, 0, len(population.periods)),
	}

	// Player selections are team-scoped, so the team facet reflects only
	// the category and period filters.
	for _, side := range []TeamSide{TeamHome, TeamAway} {
		count := 0
		for _, e := range events {
			if e.Team == side && state.matches(e, dimTeam|dimThrower|dimReceiver) {
				count++
			}
		}
		counts.Teams = append(counts.Teams, KeyCount{Key: side.String(), Count: count})
	}

	throwerTally := make(map[string]int)
	receiverTally := make(map[string]int)
	eventTypeTally := make(map[EventType]int)
	lineTypeTally := make(map[LineType]int)
	passTypeTally := make(map[PassType]int)
	periodTally := make(map[int64]int)

	for _, e := range events {
		if state.matches(e, dimThrower) {
			if key := e.ThrowerKey(); key != "" {
				throwerTally[key]++
			}
		}
		if state.matches(e, dimReceiver) {
			if key := e.ReceiverKey(); key != "" {
				receiverTally[key]++
			}
		}
		if state.matches(e, dimEventType) {
			eventTypeTally[e.Type]++
		}
		if state.matches(e, dimLineType) {
			lineTypeTally[e.LineType]++
		}
		if state.matches(e, dimPassType) {
			if passType, ok := e.PassType(); ok {
				passTypeTally[passType]++
			}
		}
		if state.matches(e, dimPeriod) {
			periodTally[e.Quarter]++
		}
	}

	for _, player := range masters.Throwers {
		counts.Throwers = append(counts.Throwers, PlayerCount{
			Key:   player.Key,
			Name:  player.Name,
			Count: throwerTally[player.Key],
		})
	}
	for _, player := range masters.Receivers {
		counts.Receivers = append(counts.Receivers, PlayerCount{
			Key:   player.Key,
			Name:  player.Name,
			Count: receiverTally[player.Key],
		})
	}
	for _, t := range population.eventTypes {
		counts.EventTypes = append(counts.EventTypes, KeyCount{Key: string(t), Count: eventTypeTally[t]})
	}
	for _, t := range population.lineTypes {
		counts.LineTypes = append(counts.LineTypes, KeyCount{Key: string(t), Count: lineTypeTally[t]})
	}
	for _, t := range population.passTypes {
		counts.PassTypes = append(counts.PassTypes, KeyCount{Key: string(t), Count: passTypeTally[t]})
	}
	for _, period := range population.periods {
		counts.Periods = append(counts.Periods, PeriodCount{Period: period, Count: periodTally[period]})
	}

	return counts
}

// categoryPopulation holds the category keys that occur at least once in the
// unfiltered, team-scoped event set, in presentation order.
type categoryPopulation struct {
	eventTypes []EventType
	lineTypes  []LineType
	passTypes  []PassType
	periods    []int64
}

func masterPopulation(events []PassPlotEvent, team TeamSide) categoryPopulation {
	eventTypes := make(map[EventType]bool)
	lineTypes := make(map[LineType]bool)
	passTypes := make(map[PassType]bool)
	periods := make(map[int64]bool)

	for _, e := range events {
		if e.Team != team {
			continue
		}
		eventTypes[e.Type] = true
		lineTypes[e.LineType] = true
		if passType, ok := e.PassType(); ok {
			passTypes[passType] = true
		}
		periods[e.Quarter] = true
	}

	population := categoryPopulation{}
	for _, t := range eventTypeOrder {
		if eventTypes[t] {
			population.eventTypes = append(population.eventTypes, t)
		}
	}
	for _, t := range lineTypeOrder {
		if lineTypes[t] {
			population.lineTypes = append(population.lineTypes, t)
		}
	}
	// a feed can carry line types outside the known four; keep them visible
	unknown := make([]LineType, 0)
	for t := range lineTypes {
		if !slices.Contains(lineTypeOrder, t) {
			unknown = append(unknown, t)
		}
	}
	slices.Sort(unknown)
	population.lineTypes = append(population.lineTypes, unknown...)
	for _, t := range passTypeOrder {
		if passTypes[t] {
			population.passTypes = append(population.passTypes, t)
		}
	}
	for period := range periods {
		population.periods = append(population.periods, period)
	}
	slices.Sort(population.periods)

	return population
}

func bootstrapSelections(state *FilterState, masters MasterPlayerLists, population categoryPopulation) {
	for _, player := range masters.Throwers {
		state.Throwers[player.Key] = true
	}
	for _, player := range masters.Receivers {
		state.Receivers[player.Key] = true
	}
	for _, t := range population.eventTypes {
		state.EventTypes[t] = true
	}
	for _, t := range population.lineTypes {
		state.LineTypes[t] = true
	}
	for _, t := range population.passTypes {
		state.PassTypes[t] = true
	}
	for _, period := range population.periods {
		state.Periods[period] = true
	}
}
