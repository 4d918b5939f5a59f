package passplot

import (
	"PassPlotApi/internal/assert"
	"testing"
)

func TestComputeStatsEmptySubset(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, stats.TotalThrows, 0)
	assert.Equal(t, stats.CompletionRate, 0.0)
	assert.Equal(t, stats.TurnoverRate, 0.0)
	assert.Equal(t, stats.GoalRate, 0.0)
	assert.Equal(t, stats.YardsPerThrow, 0.0)
	assert.Equal(t, stats.YardsPerCompletion, 0.0)
	assert.Equal(t, len(stats.PassTypes), 0)
}

// TestComputeStatsDenominator pins the attempt denominator: passes, goals,
// drops, and throwaways are throw attempts; a stall is a turnover without a
// throw, so it raises the turnover count but not the denominator.
func TestComputeStatsDenominator(t *testing.T) {
	events := []PassPlotEvent{
		testPass(TeamHome, 1, "a", "b", 20, 25),
		{Type: EventGoal, Team: TeamHome, Quarter: 1, ThrowerID: "b", ReceiverID: "c",
			ThrowerX: fptr(0), ThrowerY: fptr(25), ReceiverX: fptr(0), ReceiverY: fptr(100)},
		{Type: EventDrop, Team: TeamHome, Quarter: 2, ThrowerID: "c",
			ThrowerX: fptr(0), ThrowerY: fptr(40), TurnoverX: fptr(0), TurnoverY: fptr(48)},
		{Type: EventThrowaway, Team: TeamHome, Quarter: 2, ThrowerID: "a",
			ThrowerX: fptr(0), ThrowerY: fptr(30), TurnoverX: fptr(0), TurnoverY: fptr(70)},
		testStall(TeamHome, 2),
	}

	stats := ComputeStats(events)

	assert.Equal(t, stats.TotalThrows, 4)
	assert.Equal(t, stats.Completions, 2)
	assert.Equal(t, stats.Goals, 1)
	assert.Equal(t, stats.Turnovers, 3)

	// completions plus non-stall turnovers account for every attempt
	assert.Equal(t, stats.Completions+(stats.Turnovers-1), stats.TotalThrows)

	assert.Equal(t, stats.CompletionRate, 0.5)
	assert.Equal(t, stats.TurnoverRate, 0.75)
	assert.Equal(t, stats.GoalRate, 0.25)
}

func TestComputeStatsYardage(t *testing.T) {
	events := []PassPlotEvent{
		testPass(TeamHome, 1, "a", "b", 20, 30),  // gain 10
		testPass(TeamHome, 1, "b", "c", 30, 25),  // gain -5
		{Type: EventThrowaway, Team: TeamHome, Quarter: 1, ThrowerID: "c",
			ThrowerX: fptr(0), ThrowerY: fptr(25), TurnoverX: fptr(0), TurnoverY: fptr(55)}, // gain 30
		// drop with no recorded start: excluded from the mean, not zeroed
		{Type: EventDrop, Team: TeamHome, Quarter: 1,
			TurnoverX: fptr(0), TurnoverY: fptr(60)},
	}

	stats := ComputeStats(events)

	assert.Equal(t, stats.TotalThrows, 4)
	assert.FloatClose(t, stats.YardsPerThrow, (10.0-5.0+30.0)/3.0, 1e-9)
	assert.FloatClose(t, stats.YardsPerCompletion, (10.0-5.0)/2.0, 1e-9)
}

func TestComputeStatsPassTypeBreakdown(t *testing.T) {
	events := []PassPlotEvent{
		testPass(TeamHome, 1, "a", "b", 10, 60), // huck
		testPass(TeamHome, 1, "b", "c", 60, 62), // gain 2, lateral 0: under
		{Type: EventPass, Team: TeamHome, Quarter: 1, ThrowerID: "c", ReceiverID: "a",
			ThrowerX: fptr(-10), ThrowerY: fptr(62), ReceiverX: fptr(5), ReceiverY: fptr(63)}, // swing
		testPass(TeamHome, 1, "a", "b", 63, 58), // dump
	}

	stats := ComputeStats(events)
	assert.Equal(t, len(stats.PassTypes), 4)

	want := map[PassType]int{PassHuck: 1, PassUnder: 1, PassSwing: 1, PassDump: 1}
	for _, row := range stats.PassTypes {
		assert.Equal(t, row.Count, want[row.Type])
		assert.FloatClose(t, row.Share, 0.25, 1e-9)
	}
}

func TestPassTypeClassification(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
		startY float64
		endX   float64
		endY   float64
		want   PassType
	}{
		{name: "Huck", startY: 10, endY: 50, want: PassHuck},
		{name: "Exact Huck Threshold", startY: 0, endY: 40, want: PassHuck},
		{name: "Dump", startY: 50, endY: 45, want: PassDump},
		{name: "Swing", startX: -12, startY: 30, endX: 3, endY: 32, want: PassSwing},
		{name: "Lateral But Gaining", startX: -12, startY: 30, endX: 3, endY: 42, want: PassUnder},
		{name: "Under", startY: 30, endY: 45, want: PassUnder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := PassPlotEvent{
				Type:      EventPass,
				ThrowerX:  fptr(tt.startX),
				ThrowerY:  fptr(tt.startY),
				ReceiverX: fptr(tt.endX),
				ReceiverY: fptr(tt.endY),
			}
			got, ok := e.PassType()
			assert.Equal(t, ok, true)
			assert.Equal(t, got, tt.want)
		})
	}

	t.Run("No Pass Type For Turnovers", func(t *testing.T) {
		_, ok := testStall(TeamHome, 1).PassType()
		assert.Equal(t, ok, false)
	})
}
