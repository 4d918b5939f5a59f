package session

import (
	"PassPlotApi/internal/assert"
	"testing"

	"github.com/rs/zerolog"
)

func TestManagerOpenReusesHub(t *testing.T) {
	manager := NewManager(zerolog.Nop())

	first := manager.Open("game-1", testEvents())
	second := manager.Open("game-1", nil)
	assert.Equal(t, second, first)

	other := manager.Open("game-2", testEvents())
	if other == first {
		t.Fatal("expected a distinct hub for a different game")
	}

	hub, ok := manager.Get("game-1")
	assert.Equal(t, ok, true)
	assert.Equal(t, hub, first)

	_, ok = manager.Get("game-3")
	assert.Equal(t, ok, false)
}
