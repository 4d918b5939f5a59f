package passplot

import (
	"PassPlotApi/internal/assert"
	"testing"
)

func TestProjectY(t *testing.T) {
	tests := []struct {
		name   string
		fieldY float64
		want   float64
	}{
		{name: "Own Goal Line", fieldY: 0, want: 1200},
		{name: "Far Goal Line", fieldY: 120, want: 0},
		{name: "Midfield", fieldY: 60, want: 600},
		{name: "Behind Own Line", fieldY: -5, want: 1250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ProjectY(tt.fieldY), tt.want)
		})
	}
}

func TestProjectX(t *testing.T) {
	tests := []struct {
		name   string
		fieldX float64
		want   float64
	}{
		{name: "Center", fieldX: 0, want: 266.5},
		{name: "Right Sideline", fieldX: 26.65, want: 533},
		{name: "Left Sideline", fieldX: -26.65, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ProjectX(tt.fieldX), tt.want)
		})
	}
}

func TestProjectEvents(t *testing.T) {
	events := []PassPlotEvent{
		{
			Type:      EventPass,
			ThrowerX:  fptr(0),
			ThrowerY:  fptr(0),
			ReceiverX: fptr(10),
			ReceiverY: fptr(120),
		},
		{
			Type:      EventStall,
			TurnoverX: fptr(-10),
			TurnoverY: fptr(60),
		},
	}

	projected := ProjectEvents(events)
	assert.Equal(t, len(projected), 2)

	assert.Equal(t, *projected[0].ThrowerX, 266.5)
	assert.Equal(t, *projected[0].ThrowerY, 1200.0)
	assert.Equal(t, *projected[0].ReceiverX, 366.5)
	assert.Equal(t, *projected[0].ReceiverY, 0.0)

	assert.Equal(t, *projected[1].TurnoverX, 166.5)
	assert.Equal(t, *projected[1].TurnoverY, 600.0)
	if projected[1].ThrowerX != nil {
		t.Error("absent coordinate should stay absent after projection")
	}

	// inputs must not be mutated
	assert.Equal(t, *events[0].ThrowerY, 0.0)
}
