package session

import (
	"PassPlotApi/internal/passplot"
	"sync"

	"github.com/rs/zerolog"
)

// Manager tracks the running hubs, one per game with at least one open
// detail view.
type Manager struct {
	mu     sync.Mutex
	active map[string]*Hub
	logger zerolog.Logger
}

func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		active: make(map[string]*Hub),
		logger: logger,
	}
}

// Open returns the running hub for the game, starting one over the given
// extracted events if none exists yet. Later callers join the existing
// session and share its filter state.
func (m *Manager) Open(gameID string, events []passplot.PassPlotEvent) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.active[gameID]; ok {
		return hub
	}

	hub := NewHub(gameID, events, m.logger)
	m.active[gameID] = hub
	go hub.Run()
	m.logger.Info().Str("game_id", gameID).Msg("session hub started")

	return hub
}

func (m *Manager) Get(gameID string) (*Hub, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hub, ok := m.active[gameID]
	return hub, ok
}
