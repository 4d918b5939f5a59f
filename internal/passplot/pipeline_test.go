package passplot

import (
	"PassPlotApi/internal/assert"
	"testing"
)

// TestGameDetailPipeline walks the full recompute pipeline over a small
// two-point game: extraction, master lists, bootstrap, resolution, stats.
func TestGameDetailPipeline(t *testing.T) {
	payload := &RawPayload{Points: []RawPoint{
		{
			PointNumber: 1,
			Quarter:     1,
			Team:        "home",
			LineType:    "o-points",
			Events: []RawEvent{
				{Type: "pass", ThrowerID: "A", ReceiverID: "B",
					ThrowerX: fptr(0), ThrowerY: fptr(20), ReceiverX: fptr(5), ReceiverY: fptr(25)},
				{Type: "goal", ThrowerID: "B", ReceiverID: "C",
					ThrowerX: fptr(5), ThrowerY: fptr(25), ReceiverX: fptr(-3), ReceiverY: fptr(100)},
			},
		},
		{
			PointNumber: 2,
			Quarter:     1,
			Team:        "home",
			LineType:    "d-points",
			Events: []RawEvent{
				{Type: "throwaway", ThrowerID: "A",
					ThrowerX: fptr(1), ThrowerY: fptr(30), TurnoverX: fptr(1), TurnoverY: fptr(40)},
			},
		},
	}}

	events := ExtractEvents(payload)
	assert.Equal(t, len(events), 3)

	state := NewFilterState()
	masters := BuildMasterPlayerLists(events, state.Team)
	counts := ComputeFilterCounts(events, state, masters)

	// bootstrap selected every player and the one occurring period
	for _, key := range []string{"A", "B"} {
		assert.Equal(t, state.Throwers[key], true)
	}
	for _, key := range []string{"B", "C"} {
		assert.Equal(t, state.Receivers[key], true)
	}
	assert.Equal(t, state.Periods[1], true)
	assert.Equal(t, len(counts.Periods), 1)

	filtered := FilteredEvents(events, state)
	assert.Equal(t, len(filtered), 3)

	stats := ComputeStats(filtered)
	assert.Equal(t, stats.TotalThrows, 3)
	assert.Equal(t, stats.Completions, 2)
	assert.Equal(t, stats.Turnovers, 1)
	assert.Equal(t, stats.Goals, 1)
	assert.FloatClose(t, stats.CompletionRate, 2.0/3.0, 1e-3)
}
