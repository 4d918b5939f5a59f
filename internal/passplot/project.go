package passplot

// Field and rendering surface dimensions. The surface is taller than the
// field by the same 10x factor the width uses, with the y axis flipped so
// the attacking direction points up.
const (
	FieldLength   = 120.0
	SurfaceHeight = 1200.0
	SurfaceWidth  = 533.0

	xScale  = 10.0
	xOffset = SurfaceWidth / 2
)

// ProjectY maps a 0-120 yard field-length coordinate onto the 0-1200 unit
// surface, inverted: yard 120 lands at unit 0. Out-of-range input projects
// linearly; clipping is the renderer's job.
func ProjectY(fieldY float64) float64 {
	return (FieldLength - fieldY) * (SurfaceHeight / FieldLength)
}

// ProjectX maps a field-width coordinate centered at 0 onto the 0-533 unit
// surface, field center to surface center.
func ProjectX(fieldX float64) float64 {
	return fieldX*xScale + xOffset
}

// ProjectEvents returns copies of the given events with every recorded
// coordinate projected into surface units.
func ProjectEvents(events []PassPlotEvent) []PassPlotEvent {
	projected := make([]PassPlotEvent, 0, len(events))
	for _, e := range events {
		e.ThrowerX = projectXPtr(e.ThrowerX)
		e.ThrowerY = projectYPtr(e.ThrowerY)
		e.ReceiverX = projectXPtr(e.ReceiverX)
		e.ReceiverY = projectYPtr(e.ReceiverY)
		e.TurnoverX = projectXPtr(e.TurnoverX)
		e.TurnoverY = projectYPtr(e.TurnoverY)
		projected = append(projected, e)
	}
	return projected
}

func projectXPtr(fieldX *float64) *float64 {
	if fieldX == nil {
		return nil
	}
	x := ProjectX(*fieldX)
	return &x
}

func projectYPtr(fieldY *float64) *float64 {
	if fieldY == nil {
		return nil
	}
	y := ProjectY(*fieldY)
	return &y
}
