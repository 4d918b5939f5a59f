package session

import (
	"PassPlotApi/internal/passplot"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Hub is the session controller for one open game-detail view set: it owns
// the extracted event sequence, the master player lists, and exactly one
// FilterState. Every filter event is applied and followed by a full
// synchronous recompute (counts, filtered view, stats) before the resulting
// snapshot is broadcast, so watchers never observe partial state.
type Hub struct {
	gameID  string
	events  []passplot.PassPlotEvent
	state   *passplot.FilterState
	masters passplot.MasterPlayerLists
	logger  zerolog.Logger

	watchers     map[*Watcher]bool
	Events       chan FilterEvent
	Errors       chan error
	JoinWatcher  chan *Watcher
	LeaveWatcher chan *Watcher
}

func NewHub(gameID string, events []passplot.PassPlotEvent, logger zerolog.Logger) *Hub {
	state := passplot.NewFilterState()

	return &Hub{
		gameID:       gameID,
		events:       events,
		state:        state,
		masters:      passplot.BuildMasterPlayerLists(events, state.Team),
		logger:       logger,
		watchers:     make(map[*Watcher]bool),
		Events:       make(chan FilterEvent),
		Errors:       make(chan error),
		JoinWatcher:  make(chan *Watcher),
		LeaveWatcher: make(chan *Watcher),
	}
}

// Join registers the connection as a watcher and starts its pumps. The new
// watcher immediately receives the current snapshot.
func (h *Hub) Join(conn *websocket.Conn) *Watcher {
	watcher := newWatcher(h, conn)
	h.JoinWatcher <- watcher
	go watcher.ReadEvents()
	go watcher.WriteEvents()

	return watcher
}

func (h *Hub) Run() {
	for {
		select {
		case watcher := <-h.JoinWatcher:
			h.watchers[watcher] = true
			if msg, err := h.snapshotMessage(); err == nil {
				watcher.Receive <- msg
			}
		case watcher := <-h.LeaveWatcher:
			if _, ok := h.watchers[watcher]; ok {
				delete(h.watchers, watcher)
				close(watcher.Receive)
			}
		case event := <-h.Events:
			event.execute(h)
			h.broadcastSnapshot()
		case err := <-h.Errors:
			// a malformed event never mutates state; the previous
			// snapshot stays current for every watcher
			h.logger.Warn().Err(err).Str("game_id", h.gameID).Msg("session event rejected")
		}
	}
}

// Snapshot is the whole rendered state of a session: facet counts, the
// filtered events with coordinates projected into surface units, and the
// summary stats. It is replaced wholesale on every filter change.
type Snapshot struct {
	GameID string                   `json:"game_id"`
	Team   passplot.TeamSide        `json:"team"`
	Counts passplot.FilterCounts    `json:"counts"`
	Events []passplot.PassPlotEvent `json:"events"`
	Stats  passplot.PassPlotStats   `json:"stats"`
}

func (h *Hub) snapshot() Snapshot {
	counts := passplot.ComputeFilterCounts(h.events, h.state, h.masters)
	filtered := passplot.FilteredEvents(h.events, h.state)
	stats := passplot.ComputeStats(filtered)

	return Snapshot{
		GameID: h.gameID,
		Team:   h.state.Team,
		Counts: counts,
		Events: passplot.ProjectEvents(filtered),
		Stats:  stats,
	}
}

func (h *Hub) snapshotMessage() ([]byte, error) {
	msg, err := json.Marshal(h.snapshot())
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (h *Hub) broadcastSnapshot() {
	msg, err := h.snapshotMessage()
	if err != nil {
		h.logger.Error().Err(err).Str("game_id", h.gameID).Msg("snapshot marshal failed")
		return
	}

	for watcher := range h.watchers {
		select {
		case watcher.Receive <- msg:
		default:
			close(watcher.Receive)
			delete(h.watchers, watcher)
		}
	}
}
