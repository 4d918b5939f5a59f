package passplot

// FilterState is the current selection for one open game-detail view. It is
// owned by exactly one session controller and mutated only between full
// synchronous recomputes; the derived FilterCounts and PassPlotStats values
// are always replaced wholesale, never patched.
type FilterState struct {
	Team       TeamSide
	Throwers   map[string]bool
	Receivers  map[string]bool
	EventTypes map[EventType]bool
	LineTypes  map[LineType]bool
	PassTypes  map[PassType]bool
	Periods    map[int64]bool

	// initialized flips true after the first count recompute for the
	// current team auto-selects every master key. Subsequent recomputes
	// never re-select.
	initialized bool
}

// NewFilterState returns the default selection: home team, nothing selected,
// bootstrap pending.
func NewFilterState() *FilterState {
	return &FilterState{
		Team:       TeamHome,
		Throwers:   make(map[string]bool),
		Receivers:  make(map[string]bool),
		EventTypes: make(map[EventType]bool),
		LineTypes:  make(map[LineType]bool),
		PassTypes:  make(map[PassType]bool),
		Periods:    make(map[int64]bool),
	}
}

// SetTeam switches the inspected team. Player identity sets differ per team,
// so player selections are cleared and the next recompute re-bootstraps.
func (s *FilterState) SetTeam(team TeamSide) {
	if team == s.Team {
		return
	}
	s.Team = team
	s.Throwers = make(map[string]bool)
	s.Receivers = make(map[string]bool)
	s.initialized = false
}

func (s *FilterState) ToggleThrower(key string) {
	toggle(s.Throwers, key)
}

func (s *FilterState) ToggleReceiver(key string) {
	toggle(s.Receivers, key)
}

func (s *FilterState) ToggleEventType(t EventType) {
	toggle(s.EventTypes, t)
}

func (s *FilterState) ToggleLineType(t LineType) {
	toggle(s.LineTypes, t)
}

func (s *FilterState) TogglePassType(t PassType) {
	toggle(s.PassTypes, t)
}

func (s *FilterState) TogglePeriod(period int64) {
	toggle(s.Periods, period)
}

func toggle[K comparable](selection map[K]bool, key K) {
	if selection[key] {
		delete(selection, key)
	} else {
		selection[key] = true
	}
}

// dimension is a bitmask of filter dimensions, used to skip the dimension
// whose facet counts are being computed.
type dimension uint8

const (
	dimTeam dimension = 1 << iota
	dimThrower
	dimReceiver
	dimEventType
	dimLineType
	dimPassType
	dimPeriod

	dimNone dimension = 0
)

// matches applies every active filter except the skipped dimensions. A
// dimension with no applicable value on the event (a stall has no thrower, a
// turnover has no pass type) never excludes it.
func (s *FilterState) matches(e PassPlotEvent, skip dimension) bool {
	if skip&dimTeam == 0 && e.Team != s.Team {
		return false
	}
	if skip&dimThrower == 0 {
		if key := e.ThrowerKey(); key != "" && !s.Throwers[key] {
			return false
		}
	}
	if skip&dimReceiver == 0 {
		if key := e.ReceiverKey(); key != "" && !s.Receivers[key] {
			return false
		}
	}
	if skip&dimEventType == 0 && !s.EventTypes[e.Type] {
		return false
	}
	if skip&dimLineType == 0 && !s.LineTypes[e.LineType] {
		return false
	}
	if skip&dimPassType == 0 {
		if passType, ok := e.PassType(); ok && !s.PassTypes[passType] {
			return false
		}
	}
	if skip&dimPeriod == 0 && !s.Periods[e.Quarter] {
		return false
	}
	return true
}

// FilteredEvents resolves the full filter state against the complete event
// sequence: all dimensions conjunctive, order preserved.
func FilteredEvents(events []PassPlotEvent, state *FilterState) []PassPlotEvent {
	filtered := make([]PassPlotEvent, 0, len(events))
	for _, e := range events {
		if state.matches(e, dimNone) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
