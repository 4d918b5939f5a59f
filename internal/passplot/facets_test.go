package passplot

import (
	"PassPlotApi/internal/assert"
	"testing"
)

func countFor(counts []PlayerCount, key string) (int, bool) {
	for _, c := range counts {
		if c.Key == key {
			return c.Count, true
		}
	}
	return 0, false
}

func keyCountFor(counts []KeyCount, key string) (int, bool) {
	for _, c := range counts {
		if c.Key == key {
			return c.Count, true
		}
	}
	return 0, false
}

func TestBuildMasterPlayerListsTeamScoped(t *testing.T) {
	events := []PassPlotEvent{
		testPass(TeamHome, 1, "a", "b", 20, 25),
		testPass(TeamHome, 1, "b", "c", 25, 31),
		testPass(TeamAway, 1, "x", "y", 10, 18),
	}

	masters := BuildMasterPlayerLists(events, TeamHome)

	assert.Equal(t, len(masters.Throwers), 2)
	assert.Equal(t, masters.Throwers[0].Key, "a")
	assert.Equal(t, masters.Throwers[1].Key, "b")
	assert.Equal(t, len(masters.Receivers), 2)
	assert.Equal(t, masters.Receivers[0].Key, "b")
	assert.Equal(t, masters.Receivers[1].Key, "c")
}

func TestBootstrapSelectsEverything(t *testing.T) {
	events := []PassPlotEvent{
		testPass(TeamHome, 1, "a", "b", 20, 25),
		testPass(TeamHome, 2, "b", "c", 25, 80), // gain 55: huck
		testStall(TeamHome, 2),
	}

	state := NewFilterState()
	masters := BuildMasterPlayerLists(events, TeamHome)
	counts := ComputeFilterCounts(events, state, masters)

	assert.Equal(t, state.Throwers["a"], true)
	assert.Equal(t, state.Throwers["b"], true)
	assert.Equal(t, state.Receivers["b"], true)
	assert.Equal(t, state.Receivers["c"], true)
	assert.Equal(t, state.EventTypes[EventPass], true)
	assert.Equal(t, state.EventTypes[EventStall], true)
	assert.Equal(t, state.LineTypes[LineOPoints], true)
	assert.Equal(t, state.LineTypes[LineDPoints], true)
	assert.Equal(t, state.PassTypes[PassUnder], true)
	assert.Equal(t, state.PassTypes[PassHuck], true)
	assert.Equal(t, state.Periods[1], true)
	assert.Equal(t, state.Periods[2], true)

	// the bootstrapped view counts everything
	count, ok := countFor(counts.Throwers, "a")
	assert.Equal(t, ok, true)
	assert.Equal(t, count, 1)
	count, ok = keyCountFor(counts.EventTypes, string(EventPass))
	assert.Equal(t, ok, true)
	assert.Equal(t, count, 2)

	// a second recompute never re-selects
	state.ToggleThrower("a")
	ComputeFilterCounts(events, state, masters)
	assert.Equal(t, state.Throwers["a"], false)
}

func TestFacetedIndependence(t *testing.T) {
	events := []PassPlotEvent{
		testPass(TeamHome, 1, "a", "b", 20, 25),
		testPass(TeamHome, 1, "a", "c", 25, 31),
		testPass(TeamHome, 2, "b", "c", 31, 38),
	}

	state, masters := bootstrappedState(events, TeamHome)

	state.ToggleThrower("a")
	state.ToggleThrower("b")
	counts := ComputeFilterCounts(events, state, masters)

	// with every thrower deselected the co-occurring events disappear, so
	// receiver counts fall to zero, but the master keys stay listed
	for _, key := range []string{"b", "c"} {
		count, ok := countFor(counts.Receivers, key)
		assert.Equal(t, ok, true)
		assert.Equal(t, count, 0)
	}

	// the thrower facet ignores its own selection: counts are unchanged
	count, ok := countFor(counts.Throwers, "a")
	assert.Equal(t, ok, true)
	assert.Equal(t, count, 2)
	count, ok = countFor(counts.Throwers, "b")
	assert.Equal(t, ok, true)
	assert.Equal(t, count, 1)

	// category facets reflect the thrower selection through event
	// membership, but keep their master keys
	count, ok = keyCountFor(counts.EventTypes, string(EventPass))
	assert.Equal(t, ok, true)
	assert.Equal(t, count, 0)
	period, ok := periodCountFor(counts.Periods, 1)
	assert.Equal(t, ok, true)
	assert.Equal(t, period, 0)
}

func periodCountFor(counts []PeriodCount, period int64) (int, bool) {
	for _, c := range counts {
		if c.Period == period {
			return c.Count, true
		}
	}
	return 0, false
}

func TestPartialThrowerSelectionNarrowsReceivers(t *testing.T) {
	events := []PassPlotEvent{
		testPass(TeamHome, 1, "a", "b", 20, 25),
		testPass(TeamHome, 1, "a", "c", 25, 31),
		testPass(TeamHome, 2, "b", "c", 31, 38),
	}

	state, masters := bootstrappedState(events, TeamHome)
	state.ToggleThrower("a")
	counts := ComputeFilterCounts(events, state, masters)

	count, ok := countFor(counts.Receivers, "b")
	assert.Equal(t, ok, true)
	assert.Equal(t, count, 0)
	count, ok = countFor(counts.Receivers, "c")
	assert.Equal(t, ok, true)
	assert.Equal(t, count, 1)
}

func TestCategorySelectionNarrowsPlayerCounts(t *testing.T) {
	events := []PassPlotEvent{
		testPass(TeamHome, 1, "a", "b", 20, 25),
		testPass(TeamHome, 2, "a", "c", 25, 31),
	}

	state, masters := bootstrappedState(events, TeamHome)
	state.TogglePeriod(2)
	counts := ComputeFilterCounts(events, state, masters)

	count, ok := countFor(counts.Throwers, "a")
	assert.Equal(t, ok, true)
	assert.Equal(t, count, 1)

	// the period facet ignores its own selection
	period, ok := periodCountFor(counts.Periods, 2)
	assert.Equal(t, ok, true)
	assert.Equal(t, period, 1)
}

func TestTeamFacetIgnoresPlayerSelections(t *testing.T) {
	events := []PassPlotEvent{
		testPass(TeamHome, 1, "a", "b", 20, 25),
		testPass(TeamAway, 1, "x", "y", 10, 18),
		testPass(TeamAway, 1, "y", "x", 18, 24),
	}

	state, masters := bootstrappedState(events, TeamHome)
	state.ToggleThrower("a")
	counts := ComputeFilterCounts(events, state, masters)

	homeCount, ok := keyCountFor(counts.Teams, "home")
	assert.Equal(t, ok, true)
	assert.Equal(t, homeCount, 1)
	awayCount, ok := keyCountFor(counts.Teams, "away")
	assert.Equal(t, ok, true)
	assert.Equal(t, awayCount, 2)
}

func TestComputeFilterCountsEmptyEvents(t *testing.T) {
	state := NewFilterState()
	counts := ComputeFilterCounts(nil, state, MasterPlayerLists{})

	assert.Equal(t, len(counts.Throwers), 0)
	assert.Equal(t, len(counts.Receivers), 0)
	assert.Equal(t, len(counts.EventTypes), 0)
	assert.Equal(t, len(counts.LineTypes), 0)
	assert.Equal(t, len(counts.PassTypes), 0)
	assert.Equal(t, len(counts.Periods), 0)
	assert.Equal(t, len(FilteredEvents(nil, state)), 0)
}

func TestOmittedKeysNeverInMasterSet(t *testing.T) {
	events := []PassPlotEvent{
		testPass(TeamHome, 1, "a", "b", 20, 25),
	}

	state, masters := bootstrappedState(events, TeamHome)
	counts := ComputeFilterCounts(events, state, masters)

	// no goal, drop, throwaway, or stall occurred for this team, so those
	// keys are omitted entirely rather than listed at zero
	assert.Equal(t, len(counts.EventTypes), 1)
	assert.Equal(t, counts.EventTypes[0].Key, string(EventPass))
	assert.Equal(t, len(counts.PassTypes), 1)
	assert.Equal(t, counts.PassTypes[0].Key, string(PassUnder))
}
