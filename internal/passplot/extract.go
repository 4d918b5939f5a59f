package passplot

import "strings"

// RawPayload is the play-by-play record as the feed delivers it: points in
// game order, each holding its raw events in occurrence order.
type RawPayload struct {
	Points []RawPoint `json:"points"`
}

type RawPoint struct {
	PointNumber int64      `json:"point_number"`
	Quarter     int64      `json:"quarter"`
	Team        string     `json:"team"`
	LineType    string     `json:"line_type"`
	Events      []RawEvent `json:"events"`
}

type RawEvent struct {
	Type         string   `json:"type"`
	ThrowerX     *float64 `json:"thrower_x"`
	ThrowerY     *float64 `json:"thrower_y"`
	ReceiverX    *float64 `json:"receiver_x"`
	ReceiverY    *float64 `json:"receiver_y"`
	TurnoverX    *float64 `json:"turnover_x"`
	TurnoverY    *float64 `json:"turnover_y"`
	ThrowerID    string   `json:"thrower_id"`
	ReceiverID   string   `json:"receiver_id"`
	Description  string   `json:"description"`
	LineType     string   `json:"line_type"`
	OutOfTimeout bool     `json:"out_of_timeout"`
}

// ExtractEvents flattens a raw payload into plottable events, order
// preserved. This is a filtering step, not a validating parser: events of a
// non-visualized type, and events carrying no coordinate at all, are
// silently dropped. A nil or empty payload yields an empty sequence.
func ExtractEvents(payload *RawPayload) []PassPlotEvent {
	events := make([]PassPlotEvent, 0)
	if payload == nil {
		return events
	}

	for _, point := range payload.Points {
		for _, raw := range point.Events {
			eventType, ok := parseEventType(raw.Type)
			if !ok {
				continue
			}
			if raw.ThrowerX == nil && raw.ReceiverX == nil && raw.TurnoverX == nil {
				continue
			}

			event := PassPlotEvent{
				Type:            eventType,
				ThrowerID:       raw.ThrowerID,
				ReceiverID:      raw.ReceiverID,
				Quarter:         point.Quarter,
				PointNumber:     point.PointNumber,
				Team:            rawTeamSide(point.Team),
				IsAfterTurnover: raw.OutOfTimeout,
			}

			if raw.LineType != "" {
				event.LineType = LineType(raw.LineType)
			} else {
				event.LineType = LineType(point.LineType)
			}

			switch eventType {
			case EventPass, EventGoal:
				event.ThrowerX, event.ThrowerY = raw.ThrowerX, raw.ThrowerY
				event.ReceiverX, event.ReceiverY = raw.ReceiverX, raw.ReceiverY
			case EventDrop, EventThrowaway:
				event.ThrowerX, event.ThrowerY = raw.ThrowerX, raw.ThrowerY
				if raw.TurnoverX != nil {
					event.TurnoverX, event.TurnoverY = raw.TurnoverX, raw.TurnoverY
				} else {
					// turnover spot not separately recorded
					event.TurnoverX, event.TurnoverY = raw.ThrowerX, raw.ThrowerY
				}
			case EventStall:
				event.TurnoverX, event.TurnoverY = raw.TurnoverX, raw.TurnoverY
			}

			event.ThrowerName = throwerNameFromDescription(raw.Description)
			event.ReceiverName = receiverNameFromDescription(raw.Description)

			events = append(events, event)
		}
	}

	return events
}

func rawTeamSide(s string) TeamSide {
	side, err := ParseTeamSide(s)
	if err != nil {
		return TeamHome
	}
	return side
}

// Name derivation is a heuristic over the free-text description, used only
// for display and as an identity fallback when the feed omits player IDs. A
// failed parse is an empty name, never an error.

func throwerNameFromDescription(description string) string {
	if name := nameAfter(description, "from "); name != "" {
		return name
	}
	return nameAfter(description, "by ")
}

func receiverNameFromDescription(description string) string {
	return nameAfter(description, "to ")
}

var nameStops = []string{" from ", " to ", " by "}

func nameAfter(description, marker string) string {
	i := strings.Index(description, marker)
	if i < 0 {
		return ""
	}

	rest := description[i+len(marker):]
	for _, stop := range nameStops {
		if j := strings.Index(rest, stop); j >= 0 {
			rest = rest[:j]
		}
	}

	return strings.Trim(rest, " .,!")
}
