package session

import (
	"PassPlotApi/internal/passplot"
)

// FilterEvent is one filter mutation sent by a watcher. Executing it
// changes the hub's FilterState; the hub then runs the full recompute
// pipeline and broadcasts one snapshot. A parse or validation failure never
// reaches execute, so the prior snapshot stands.
type FilterEvent interface {
	execute(h *Hub)
}

type FilterEventType int

const (
	selectTeam FilterEventType = iota
	toggleThrower
	toggleReceiver
	toggleEventType
	toggleLineType
	togglePassType
	togglePeriod
	resetFilters
)

type GenericEvent map[string]any

func (e GenericEvent) parseEvent() (FilterEvent, error) {
	eventType, err := checkAndAssertIntFromMap(e, "type")
	if err != nil {
		return nil, ErrEventParseFailed
	}

	switch FilterEventType(eventType) {
	case selectTeam:
		event := TeamSelectEvent{}
		team, err := checkAndAssertStringFromMap(e, "team")
		if err != nil {
			return nil, ErrEventParseFailed
		}
		event.Team = team

		if err := event.validate(); err != nil {
			return nil, err
		}
		return event, nil
	case toggleThrower, toggleReceiver, toggleEventType, toggleLineType, togglePassType:
		event := ToggleEvent{Dimension: FilterEventType(eventType)}
		key, err := checkAndAssertStringFromMap(e, "key")
		if err != nil {
			return nil, ErrEventParseFailed
		}
		event.Key = key

		if err := event.validate(); err != nil {
			return nil, err
		}
		return event, nil
	case togglePeriod:
		event := PeriodToggleEvent{}
		period, err := checkAndAssertIntFromMap(e, "period")
		if err != nil {
			return nil, ErrEventParseFailed
		}
		event.Period = int64(period)

		if err := event.validate(); err != nil {
			return nil, err
		}
		return event, nil
	case resetFilters:
		return ResetEvent{}, nil
	}

	return nil, ErrEventParseFailed
}

// TeamSelectEvent switches the inspected team, which clears player
// selections, rebuilds the master player lists, and re-bootstraps on the
// recompute that follows.
type TeamSelectEvent struct {
	Team string
}

func (e TeamSelectEvent) validate() error {
	if _, err := passplot.ParseTeamSide(e.Team); err != nil {
		return ErrEventValidationFailed
	}
	return nil
}

func (e TeamSelectEvent) execute(h *Hub) {
	side, err := passplot.ParseTeamSide(e.Team)
	if err != nil {
		return
	}

	h.state.SetTeam(side)
	h.masters = passplot.BuildMasterPlayerLists(h.events, side)
}

// ToggleEvent flips one key of a set-valued dimension.
type ToggleEvent struct {
	Dimension FilterEventType
	Key       string
}

func (e ToggleEvent) validate() error {
	if e.Key == "" {
		return ErrEventValidationFailed
	}
	switch e.Dimension {
	case toggleThrower, toggleReceiver, toggleEventType, toggleLineType, togglePassType:
		return nil
	default:
		return ErrEventValidationFailed
	}
}

func (e ToggleEvent) execute(h *Hub) {
	switch e.Dimension {
	case toggleThrower:
		h.state.ToggleThrower(e.Key)
	case toggleReceiver:
		h.state.ToggleReceiver(e.Key)
	case toggleEventType:
		h.state.ToggleEventType(passplot.EventType(e.Key))
	case toggleLineType:
		h.state.ToggleLineType(passplot.LineType(e.Key))
	case togglePassType:
		h.state.TogglePassType(passplot.PassType(e.Key))
	}
}

type PeriodToggleEvent struct {
	Period int64
}

func (e PeriodToggleEvent) validate() error {
	if e.Period < 1 {
		return ErrEventValidationFailed
	}
	return nil
}

func (e PeriodToggleEvent) execute(h *Hub) {
	h.state.TogglePeriod(e.Period)
}

// ResetEvent drops every selection and lets the next recompute bootstrap
// back to the select-all view of the current team.
type ResetEvent struct{}

func (e ResetEvent) execute(h *Hub) {
	team := h.state.Team
	h.state = passplot.NewFilterState()
	h.state.SetTeam(team)
	h.masters = passplot.BuildMasterPlayerLists(h.events, team)
}
