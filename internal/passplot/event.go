package passplot

import "errors"

// EventType is the closed set of event variants that get plotted. Raw events
// of any other type are discarded during extraction.
type EventType string

const (
	EventPass      EventType = "pass"
	EventGoal      EventType = "goal"
	EventDrop      EventType = "drop"
	EventThrowaway EventType = "throwaway"
	EventStall     EventType = "stall"
)

// eventTypeOrder fixes the presentation order of the event type facet.
var eventTypeOrder = []EventType{EventPass, EventGoal, EventDrop, EventThrowaway, EventStall}

func parseEventType(s string) (EventType, bool) {
	switch EventType(s) {
	case EventPass, EventGoal, EventDrop, EventThrowaway, EventStall:
		return EventType(s), true
	default:
		return "", false
	}
}

type TeamSide int64

const (
	TeamHome TeamSide = iota
	TeamAway
)

func (s TeamSide) String() string {
	switch s {
	case TeamHome:
		return "home"
	case TeamAway:
		return "away"
	default:
		return ""
	}
}

func (s TeamSide) MarshalJSON() ([]byte, error) {
	switch s {
	case TeamHome:
		return []byte(`"home"`), nil
	case TeamAway:
		return []byte(`"away"`), nil
	default:
		return nil, errors.New("invalid team side")
	}
}

func ParseTeamSide(s string) (TeamSide, error) {
	switch s {
	case "home":
		return TeamHome, nil
	case "away":
		return TeamAway, nil
	default:
		return TeamHome, errors.New("invalid team side")
	}
}

// LineType says which unit was on the field for a point, with distinct
// variants when the point resumed out of a timeout.
type LineType string

const (
	LineOPoints  LineType = "o-points"
	LineDPoints  LineType = "d-points"
	LineOOutOfTO LineType = "o-out-of-to"
	LineDOutOfTO LineType = "d-out-of-to"
)

var lineTypeOrder = []LineType{LineOPoints, LineDPoints, LineOOutOfTO, LineDOutOfTO}

// PassType classifies a completed throw by its vector. Only pass and goal
// events carry a pass type; turnover-located events are never excluded by
// the pass type facet.
type PassType string

const (
	PassHuck  PassType = "huck"
	PassDump  PassType = "dump"
	PassSwing PassType = "swing"
	PassUnder PassType = "under"
)

var passTypeOrder = []PassType{PassHuck, PassUnder, PassSwing, PassDump}

const (
	huckMinGain     = 40.0
	swingMaxGain    = 5.0
	swingMinLateral = 10.0
)

// PassPlotEvent is one plottable occurrence within a point. Coordinate
// fields are in field yards and present or absent depending on Type: pass
// and goal carry thrower and receiver coordinates, drop and throwaway carry
// thrower and turnover coordinates, stall carries only a turnover
// coordinate.
type PassPlotEvent struct {
	Type            EventType `json:"type"`
	ThrowerX        *float64  `json:"thrower_x,omitempty"`
	ThrowerY        *float64  `json:"thrower_y,omitempty"`
	ReceiverX       *float64  `json:"receiver_x,omitempty"`
	ReceiverY       *float64  `json:"receiver_y,omitempty"`
	TurnoverX       *float64  `json:"turnover_x,omitempty"`
	TurnoverY       *float64  `json:"turnover_y,omitempty"`
	ThrowerID       string    `json:"thrower_id,omitempty"`
	ReceiverID      string    `json:"receiver_id,omitempty"`
	ThrowerName     string    `json:"thrower_name,omitempty"`
	ReceiverName    string    `json:"receiver_name,omitempty"`
	Quarter         int64     `json:"quarter"`
	PointNumber     int64     `json:"point_number"`
	LineType        LineType  `json:"line_type"`
	Team            TeamSide  `json:"team"`
	IsAfterTurnover bool      `json:"is_after_turnover"`
}

// ThrowerKey returns the identity the thrower facet filters on: the explicit
// identifier when the feed provides one, otherwise the name derived from the
// event description. Empty means no thrower applies to this event.
func (e PassPlotEvent) ThrowerKey() string {
	if e.ThrowerID != "" {
		return e.ThrowerID
	}
	return e.ThrowerName
}

func (e PassPlotEvent) ReceiverKey() string {
	if e.ReceiverID != "" {
		return e.ReceiverID
	}
	return e.ReceiverName
}

// PassType classifies the throw vector of a pass or goal. The second return
// is false for events that carry no pass type (turnovers, stalls, or
// completions missing an endpoint).
func (e PassPlotEvent) PassType() (PassType, bool) {
	switch e.Type {
	case EventPass, EventGoal:
	case EventDrop, EventThrowaway, EventStall:
		return "", false
	default:
		return "", false
	}
	if e.ThrowerX == nil || e.ThrowerY == nil || e.ReceiverX == nil || e.ReceiverY == nil {
		return "", false
	}

	gain := *e.ReceiverY - *e.ThrowerY
	lateral := *e.ReceiverX - *e.ThrowerX
	if lateral < 0 {
		lateral = -lateral
	}

	switch {
	case gain >= huckMinGain:
		return PassHuck, true
	case gain < 0:
		return PassDump, true
	case gain < swingMaxGain && lateral >= swingMinLateral:
		return PassSwing, true
	default:
		return PassUnder, true
	}
}

// isThrow reports whether the event counts as a throw attempt. Stalls are
// turnovers without a throw.
func (e PassPlotEvent) isThrow() bool {
	switch e.Type {
	case EventPass, EventGoal, EventDrop, EventThrowaway:
		return true
	case EventStall:
		return false
	default:
		return false
	}
}

// gain returns the attacking-direction yardage of the throw, start to end.
// The second return is false when either endpoint is unrecorded.
func (e PassPlotEvent) gain() (float64, bool) {
	var start, end *float64
	switch e.Type {
	case EventPass, EventGoal:
		start, end = e.ThrowerY, e.ReceiverY
	case EventDrop, EventThrowaway:
		start, end = e.ThrowerY, e.TurnoverY
	case EventStall:
		return 0, false
	default:
		return 0, false
	}
	if start == nil || end == nil {
		return 0, false
	}
	return *end - *start, true
}
